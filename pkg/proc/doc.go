// Package proc composes record processors.
//
// A Processor receives a Record (content under "data", side information under
// "metadata", anything else as opaque context) and returns one of:
//   - nil: the record is left unchanged
//   - a string or []byte: the new content
//   - a string-keyed mapping: fields merged into the record; "metadata" is
//     merged key by key instead of being replaced
//   - a Metadata: a metadata layer, same as {"metadata": m}
//   - a Result: the explicit form of the three cases above
//
// Compose chains processors into a single Processor. Arguments are declared
// outermost first and run innermost first, like function composition:
//
//	p := proc.Compose(minify, compile)
//	out, err := proc.Run(ctx, p, proc.NewRecord(src)) // minify(compile(src))
//
// Composed processors satisfy the same contract and can be composed again.
package proc
