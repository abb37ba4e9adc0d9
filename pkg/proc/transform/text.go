package transform

import (
	"context"
	"unicode"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/solo"
)

const (
	NameNormalizeNFC = "nfc"
	NameStripMarks   = "strip-marks"
)

func NormalizeNFC() proc.Processor {
	return proc.Named(NameNormalizeNFC, solo.Map(func(_ context.Context, s string) string {
		return norm.NFC.String(s)
	}))
}

// StripMarks removes combining marks, turning "café" into "cafe".
func StripMarks() proc.Processor {
	return proc.Named(NameStripMarks, solo.Try(func(_ context.Context, s string) (string, error) {
		t := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		out, _, err := xtransform.String(t, s)
		return out, err
	}))
}
