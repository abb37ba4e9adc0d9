package proc

import "fmt"

// Kind tags the variant held by a Result.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindContent
	KindPartial
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindContent:
		return "content"
	case KindPartial:
		return "partial"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is the normalized output of one processor call: nothing, a new
// content value, or a partial record to merge into the current one.
type Result struct {
	kind    Kind
	content string
	partial map[string]any
}

func Empty() Result {
	return Result{kind: KindEmpty}
}

func Content(data string) Result {
	return Result{kind: KindContent, content: data}
}

func Partial(fields map[string]any) Result {
	return Result{kind: KindPartial, partial: fields}
}

func (r Result) Kind() Kind {
	return r.kind
}

func (r Result) Content() string {
	return r.content
}

func (r Result) Partial() map[string]any {
	return r.partial
}

func (r Result) IsEmpty() bool {
	return r.kind == KindEmpty
}

// Apply derives the next record from current.
func (r Result) Apply(current Record) Record {
	switch r.kind {
	case KindEmpty:
		return current
	case KindContent:
		return current.With(KeyData, r.content)
	case KindPartial:
		return current.Merge(r.partial)
	default:
		panic(fmt.Sprintf("proc: unknown result kind %v", r.kind))
	}
}

// Normalize maps a raw processor return value onto a Result.
//
// nil (typed nil pointers included) is Empty, strings and byte slices are
// Content, string-keyed maps are Partial. A bare Metadata value is a partial
// holding only a metadata layer. Any other value, or a partial whose
// metadata is not a mapping, fails with ErrInvalidReturn.
func Normalize(v any) (Result, error) {
	if IsNil(v) {
		return Empty(), nil
	}

	var fields map[string]any
	switch out := v.(type) {
	case Result:
		if out.kind != KindPartial {
			return out, nil
		}
		fields = out.partial
	case string:
		return Content(out), nil
	case []byte:
		return Content(string(out)), nil
	case Record:
		fields = out
	case Metadata:
		fields = map[string]any{KeyMetadata: out}
	case map[string]any:
		fields = out
	default:
		m, ok := reflectMapping(v)
		if !ok {
			return Result{}, &ReturnTypeError{Position: -1, Type: fmt.Sprintf("%T", v)}
		}
		fields = m
	}

	if md, ok := fields[KeyMetadata]; ok {
		if _, ok := asMetadata(md); !ok {
			return Result{}, &ReturnTypeError{Position: -1, Type: fmt.Sprintf("%T", v),
				Field: KeyMetadata, FieldType: fmt.Sprintf("%T", md)}
		}
	}
	return Partial(fields), nil
}
