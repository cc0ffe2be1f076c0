package parser

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// loadLexer defines the lexer for the LOAD command language.
	//
	// Rule order matters: connection URIs and filesystem paths overlap with
	// plain identifiers, so the more specific token classes are listed first.
	// A ConnURI is any scheme://... run up to whitespace, a comma, or the
	// command terminator; its internals are decomposed semantically by the
	// load package rather than lexically here. A Path is any bare token that
	// contains at least one "." or "/", which keeps file names like b.csv and
	// /a/b.csv from lexing as identifiers while leaving keywords untouched.
	loadLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
		{Name: "DString", Pattern: `"([^"\\]|\\.)*"`},
		{Name: "ConnURI", Pattern: `[a-zA-Z][a-zA-Z0-9+.-]*://[^\s;,]*`},
		{Name: "Path", Pattern: `[a-zA-Z0-9_~./-]*[./][a-zA-Z0-9_~./-]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
		{Name: "Punct", Pattern: `[(),;=]`},
		{Name: "Whitespace", Pattern: `\s+`},
		// Grammar extension text is free-form ABNF; anything the rules above
		// do not claim becomes a single-character token so the extension span
		// still lexes. The grammar itself never references Any, so stray
		// characters outside an extension fail the parse with a position.
		{Name: "Any", Pattern: `.`},
	})

	// parser is the participle parser instance for the LOAD command language
	parser = participle.MustBuild[Program](
		participle.Lexer(loadLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(4),
	)
)

type (
	// Program is the root of the LOAD command grammar: one or more
	// semicolon-terminated commands in source order.
	Program struct {
		Commands []*Command `parser:"@@+"`

		// Source holds the full input text the program was parsed from. It is
		// populated by ParseString and used to recover verbatim spans (such as
		// inline grammar extension text) that the token stream normalizes.
		Source string
	}

	// Command represents a single load command. Exactly one variant field is
	// non-nil after a successful parse.
	Command struct {
		Database *DatabaseLoadStmt `parser:"@@"`
		Syslog   *SyslogLoadStmt   `parser:"| @@"`
		File     *FileLoadStmt     `parser:"| @@"`
	}
)

// ParseString parses LOAD commands from a string and returns the parsed
// program. Keywords are case-insensitive and whitespace (including newlines)
// is insignificant between tokens.
//
// Example usage:
//
//	program, err := parser.ParseString(`
//	    LOAD FROM /data/users.csv
//	    INTO postgresql://localhost:5432/app?users
//	    WITH truncate, create tables;
//	`)
//	if err != nil {
//	    log.Fatalf("parse error: %v", err)
//	}
//
//	for _, cmd := range program.Commands {
//	    if cmd.File != nil {
//	        fmt.Printf("file load into %s\n", cmd.File.Target.URI)
//	    }
//	}
//
// Returns an error carrying the input position at the first point the grammar
// cannot continue; there is no partial-result recovery across a malformed
// command.
func ParseString(input string) (*Program, error) {
	program, err := parser.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse load commands")
	}

	program.Source = input
	return program, nil
}

// Parse parses LOAD commands from an io.Reader. The reader is consumed fully
// before parsing so that verbatim source spans remain recoverable.
func Parse(reader io.Reader) (*Program, error) {
	input, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read load commands")
	}

	return ParseString(string(input))
}

// ParseFile parses LOAD commands from the file at path.
func ParseFile(path string) (*Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	return ParseString(string(content))
}
