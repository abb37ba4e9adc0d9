// Package cache is the cache collaborator handed to processors through the
// record. Processors look it up with FromRecord and memoize expensive work
// with Fetch; the composer never reads it.
package cache
