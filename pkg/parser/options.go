package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// OptionClause represents the WITH clause of file and database load
	// commands. The vocabulary is fixed; a phrase outside it fails the whole
	// clause (and therefore the whole command) rather than being skipped.
	OptionClause struct {
		Options []*Option `parser:"'WITH' @@ (',' @@)*"`
	}

	// Option is a single recognized load option. Exactly one field group is
	// set per parsed option. Options are order-insensitive; when a flag is
	// repeated the accumulation order decides (last one wins, see the load
	// package's merge).
	Option struct {
		Pos            lexer.Position
		Workers        *int `parser:"'WORKERS' '=' @Number"`
		BatchRows      *int `parser:"| 'BATCH' 'ROWS' '=' @Number"`
		BatchSize      *int `parser:"| 'BATCH' 'SIZE' '=' @Number"`
		PrefetchRows   *int `parser:"| 'PREFETCH' 'ROWS' '=' @Number"`
		DropTables     bool `parser:"| @('DROP' 'TABLES')"`
		Truncate       bool `parser:"| @'TRUNCATE'"`
		CreateTables   bool `parser:"| @('CREATE' 'TABLES')"`
		CreateIndexes  bool `parser:"| @('CREATE' 'INDEXES')"`
		ResetSequences bool `parser:"| @('RESET' 'SEQUENCES')"`
	}
)
