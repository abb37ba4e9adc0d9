// Package registry names processors and assembles named pipelines from them.
//
// Pipelines list their steps in the same order as proc.Compose arguments,
// outermost first, and may refer to other pipelines:
//
//	pipelines:
//	  json:
//	    - minify-json
//	    - yaml
//	  clean-json:
//	    - json
//	    - nfc
package registry
