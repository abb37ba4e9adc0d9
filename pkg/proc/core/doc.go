// Package core carries per-run options through context.Context: the logger
// used by composed processors and the id of the top-level run. It holds no
// processing logic of its own.
package core
