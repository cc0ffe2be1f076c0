// Package format renders compiled load commands back to canonical command
// text.
//
// The formatter consumes load package descriptors rather than the raw AST,
// so its output always reflects applied defaults: hosts and ports appear
// explicitly, options come out in a fixed order, and values are re-quoted.
// Formatting then reparsing a program yields a structurally equal program.
//
//	var buf bytes.Buffer
//	if err := format.Format(&buf, format.Defaults, program.Commands...); err != nil {
//	    log.Fatal(err)
//	}
package format
