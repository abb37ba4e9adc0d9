// Package chain provides a fluent, eager wrapper around proc.Apply.
//
// Steps run in the order they are written, left to right, which is the
// reverse of the argument order of proc.Compose:
//
//	chain.FromData(ctx, src).Then(compile).Then(minify)
//
// is equivalent to proc.Compose(minify, compile). The chain stops at the
// first error and keeps it.
//
// Key operations:
// - Start/FromData: begin a chain from a record or content
// - Then: apply a processor
// - Ensure: run a side effect on success without changing the record
// - Result/Finally: collapse the chain
package chain
