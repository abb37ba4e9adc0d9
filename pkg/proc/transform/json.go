package transform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/solo"
)

const NameMinifyJSON = "minify-json"

// MinifyJSON strips insignificant whitespace from JSON content.
func MinifyJSON() proc.Processor {
	return proc.Named(NameMinifyJSON, solo.Try(func(_ context.Context, src string) (string, error) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(src)); err != nil {
			return "", fmt.Errorf("minify json: %w", err)
		}
		return buf.String(), nil
	}))
}
