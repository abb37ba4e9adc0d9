package transform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/procompose/pkg/proc"
	"github.com/ib-77/procompose/pkg/proc/cache"
)

const (
	NameCompileYAML = "yaml"
	// MetaYAMLDocuments holds the number of YAML documents compiled.
	MetaYAMLDocuments = "yaml_documents"

	cacheNamespace = "yaml-json/v1"
)

// Compiled is the value CompileYAML stores in the record cache.
type Compiled struct {
	JSON      string `json:"json"`
	Documents int    `json:"documents"`
}

// CompileYAML compiles YAML content into indented JSON. A stream of several
// documents compiles into a JSON array. When the record carries a cache the
// output is memoized by source digest.
func CompileYAML() proc.Processor {
	return proc.Named(NameCompileYAML, proc.Func(compileYAML))
}

func compileYAML(_ context.Context, in proc.Record) (any, error) {
	src, ok := in.Data()
	if !ok {
		return nil, nil
	}

	c, _ := cache.FromRecord(in)
	key := cache.Key(cacheNamespace, src)
	v, err := cache.Fetch(c, key, func() (any, error) {
		return yamlToJSON(src)
	})
	if err != nil {
		return nil, err
	}

	out, ok := asCompiled(v)
	if !ok {
		// the backend gave back something else; compile again and overwrite it
		out, err = yamlToJSON(src)
		if err != nil {
			return nil, err
		}
		if c != nil {
			c.Set(key, out)
		}
	}

	return proc.Partial(map[string]any{
		proc.KeyData:     out.JSON,
		proc.KeyMetadata: proc.Metadata{MetaYAMLDocuments: out.Documents},
	}), nil
}

// asCompiled reads a cached value back, including the map shape a
// serializing backend hands out.
func asCompiled(v any) (Compiled, bool) {
	switch t := v.(type) {
	case Compiled:
		return t, true
	case *Compiled:
		if t == nil {
			return Compiled{}, false
		}
		return *t, true
	case map[string]any:
		js, ok := t["json"].(string)
		if !ok {
			return Compiled{}, false
		}
		switch n := t["documents"].(type) {
		case int:
			return Compiled{JSON: js, Documents: n}, true
		case int64:
			return Compiled{JSON: js, Documents: int(n)}, true
		case float64:
			return Compiled{JSON: js, Documents: int(n)}, true
		}
	}
	return Compiled{}, false
}

func yamlToJSON(src string) (Compiled, error) {
	dec := yaml.NewDecoder(strings.NewReader(src))

	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Compiled{}, fmt.Errorf("compile yaml: %w", err)
		}
		docs = append(docs, jsonable(doc))
	}

	var v any
	switch len(docs) {
	case 0:
	case 1:
		v = docs[0]
	default:
		v = docs
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Compiled{}, fmt.Errorf("compile yaml: %w", err)
	}
	return Compiled{JSON: string(b), Documents: len(docs)}, nil
}

// jsonable rewrites YAML mappings with non-string keys into string-keyed maps.
func jsonable(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = jsonable(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = jsonable(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = jsonable(item)
		}
		return out
	default:
		return v
	}
}
