package registry

import (
	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/transform"
)

// Standard returns a registry holding the processors of package transform
// under their own names.
func Standard() *Registry {
	r := New()
	for name, p := range map[string]proc.Processor{
		transform.NameCompileYAML:  transform.CompileYAML(),
		transform.NameMinifyJSON:   transform.MinifyJSON(),
		transform.NameNormalizeNFC: transform.NormalizeNFC(),
		transform.NameStripMarks:   transform.StripMarks(),
	} {
		if err := r.Register(name, p); err != nil {
			panic(err)
		}
	}
	return r
}
