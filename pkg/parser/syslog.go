package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// GrammarClause represents the syslog grammar clause
	// Syntax: WITH GRAMMAR = base-name <raw-extension-text> REGISTERING name, ...
	//
	// The extension text between the base grammar name and the REGISTERING
	// keyword is free-form ABNF destined for an external grammar compiler. The
	// token stream cannot preserve its exact layout (whitespace is elided), so
	// the raw tokens are kept and the verbatim span is recovered from the
	// original source via ExtensionText.
	//
	// Because ";" terminates commands, extension text cannot contain a
	// semicolon. ABNF comments (which start with ";") must be stripped from
	// extension text before it is embedded in a command.
	GrammarClause struct {
		Pos       lexer.Position
		Name      string            `parser:"'WITH' 'GRAMMAR' '=' @Ident"`
		Extension []*ExtensionToken `parser:"@@*"`
		Fields    []string          `parser:"'REGISTERING' @Ident (',' @Ident)*"`
	}

	// ExtensionToken is a single raw token of grammar extension text. Tokens
	// are captured one element per repetition so the whole run survives; only
	// the positions matter, the values are never reassembled directly.
	ExtensionToken struct {
		Pos   lexer.Position
		Value string `parser:"@(~('REGISTERING' | ';'))"`
	}
)

// ExtensionText returns the verbatim source span covered by the extension
// tokens, preserving the original line layout that ABNF requires. It returns
// an empty string when the clause carries no extension text.
func (g *GrammarClause) ExtensionText(source string) string {
	if len(g.Extension) == 0 {
		return ""
	}

	first := g.Extension[0].Pos.Offset
	last := g.Extension[len(g.Extension)-1]
	end := last.Pos.Offset + len(last.Value)

	if first < 0 || end > len(source) || first > end {
		return ""
	}

	return source[first:end]
}
