// Package executor dispatches compiled load programs to their collaborators.
//
// The command language core only produces descriptors; this package is the
// dispatcher that pattern-matches on the load.Command variants and hands each
// one to the matching loader interface:
//
//   - FileLoad     -> FileLoader (built-in: CSVLoader over stdin/file/http)
//   - DatabaseLoad -> DatabaseLoader (built-in: MySQLLoader streaming into
//     PostgreSQL via the COPY protocol)
//   - SyslogLoad   -> SyslogLoader (no built-in; the UDP listener and the
//     ABNF-to-parser compiler live outside this module)
//
// The built-in loaders cover data movement: bulk COPY, truncation, sequence
// resets, session settings, and cast-rule transforms. Schema manipulation
// (drop/create tables, create indexes) is delegated to an external schema
// engine and rejected with a clear error when requested.
//
//	program, err := load.ParseFile("migration.load")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := executor.New(executor.Config{}).Run(ctx, program)
//	for _, result := range results {
//	    fmt.Printf("%s: %s\n", result.Status, result.Duration)
//	}
package executor
