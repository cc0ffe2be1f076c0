// Package parser provides a participle-based parser for the pgloader command
// language.
//
// The command language describes how to move data from a source (local file,
// stdin, HTTP resource, a remote MySQL database, or a syslog message stream)
// into a PostgreSQL target, together with load options, session settings, and
// per-column type-cast rules. This package owns syntax only: it turns command
// text into a raw AST with position information. Semantic assembly (scheme
// defaults, option merging, target validation) lives in the load package.
//
// Key features:
//   - Case-insensitive keywords with insignificant whitespace between tokens
//   - Structured error messages with line and column information
//   - Verbatim capture of inline syslog grammar extension text
//   - Strict option vocabulary: unknown flags fail the whole command
//
// Basic usage:
//
//	program, err := parser.ParseString(`
//	    LOAD DATABASE FROM mysql://root@localhost/sakila
//	    INTO postgresql://localhost/sakila
//	    WITH workers = 4, create tables
//	    SET work_mem = '128MB'
//	    CAST type int WITH EXTRA auto_increment TO bigserial;
//	`)
//
//	// Parse from a file
//	program, err = parser.ParseFile("migration.load")
//
// The parser returns a Program containing all parsed commands in source
// order; the whole input either parses or the first unmatchable position is
// reported as an error.
package parser
