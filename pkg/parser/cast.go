package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// CastClause represents the CAST clause of a database load command. Rule
	// order is significant: the first rule matching a table column applies,
	// so the textual order must be preserved.
	CastClause struct {
		Rules []*CastRuleStmt `parser:"'CAST' @@ (',' @@)*"`
	}

	// CastRuleStmt represents a single cast rule
	// Syntax: ( COLUMN | TYPE ) name [ WITH EXTRA auto_increment ]
	//         { TO type | DROP DEFAULT | DROP NOT NULL }+ [ USING function ]
	CastRuleStmt struct {
		Pos    lexer.Position
		Source *CastSelector `parser:"@@"`
		Extra  bool          `parser:"@('WITH' 'EXTRA' 'AUTO_INCREMENT')?"`
		Defs   []*CastDef    `parser:"@@+"`
		Using  *string       `parser:"('USING' @(Path | Ident))?"`
	}

	// CastSelector selects which source columns a rule applies to: by column
	// name or by source type name.
	CastSelector struct {
		Column *string `parser:"'COLUMN' @(Ident | String)"`
		Type   *string `parser:"| 'TYPE' @(Ident | String)"`
	}

	// CastDef is one sub-clause of a cast rule definition. Sub-clauses may
	// appear in any order; per kind the first occurrence takes effect during
	// assembly (a deliberate choice, not iteration-order accident).
	CastDef struct {
		To          *string `parser:"'TO' @(Ident | String)"`
		DropDefault bool    `parser:"| @('DROP' 'DEFAULT')"`
		DropNotNull bool    `parser:"| @('DROP' 'NOT' 'NULL')"`
	}
)
