package proc

import "context"

// Processor transforms a record. Process returns nil, a content value
// (string or []byte), a string-keyed mapping or a Result.
type Processor interface {
	Process(ctx context.Context, in Record) (any, error)
}

// Func adapts a plain function to Processor.
type Func func(ctx context.Context, in Record) (any, error)

func (f Func) Process(ctx context.Context, in Record) (any, error) {
	return f(ctx, in)
}

// Namer is implemented by processors that can report a name for logs and errors.
type Namer interface {
	Name() string
}

type named struct {
	name string
	p    Processor
}

// Named attaches name to p.
func Named(name string, p Processor) Processor {
	return named{name: name, p: p}
}

func (n named) Process(ctx context.Context, in Record) (any, error) {
	return n.p.Process(ctx, in)
}

func (n named) Name() string {
	return n.name
}

// NameOf returns the name reported by p, or "" when it has none.
func NameOf(p Processor) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	return ""
}

// Identity returns a processor that leaves every record unchanged.
func Identity() Processor {
	return Compose()
}
