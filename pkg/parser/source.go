package parser

import "github.com/alecthomas/participle/v2/lexer"

// SourceClause represents the FROM clause of a file load command.
//
// The alternatives are tried in a fixed priority order: the literal stdin,
// then any scheme://... URI (http sources and database sources share the
// ConnURI token and are told apart by scheme during assembly), then a quoted
// path, then a bare path. A bare path and a connection URI can both start
// with alphabetic characters, so the URI form must win when both could match.
type SourceClause struct {
	Pos    lexer.Position
	Stdin  bool    `parser:"@'STDIN'"`
	URI    *string `parser:"| @ConnURI"`
	Quoted *string `parser:"| @String"`
	Path   *string `parser:"| @(Path | Ident)"`
}
