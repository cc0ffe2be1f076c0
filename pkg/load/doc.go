// Package load defines the executable descriptors produced from parsed LOAD
// commands and the assembler that builds them.
//
// Where the parser package owns syntax, this package owns semantics:
// connection URIs are decomposed into ConnectionInfo values with scheme
// defaults applied (host "localhost", port 5432 for postgresql and 3306 for
// mysql, none for syslog), WITH options are merged deterministically, SET
// values are unquoted, cast rules keep their textual order, and every
// command's target is checked to be a PostgreSQL connection.
//
// Descriptors are plain immutable values. Nothing here executes a load or
// touches the network; a compiled Program is handed to the executor package
// (or any other dispatcher) which pattern-matches on the command variants.
//
//	program, err := load.ParseString(`LOAD FROM stdin INTO postgresql://localhost/db;`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, cmd := range program.Commands {
//	    switch {
//	    case cmd.File != nil:
//	        // hand to the file loader
//	    case cmd.Database != nil:
//	        // hand to the migration engine
//	    case cmd.Syslog != nil:
//	        // hand to the syslog listener
//	    }
//	}
package load
