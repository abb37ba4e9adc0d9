// Package solo lifts plain functions into proc.Processor values.
//
// Highlights:
// - Map/Try: replace the content of a record
// - Tee: run a side effect and leave the record unchanged
// - Validate: fail the chain on invalid input
// - When: run a processor only when a condition holds
// - Set/Annotate/Trace: add fields or metadata
package solo
