// Package transform holds content transformers usable as processors: a YAML
// to JSON compiler, a JSON minifier and Unicode normalizers. They follow the
// processor contract only and know nothing about composition.
package transform
