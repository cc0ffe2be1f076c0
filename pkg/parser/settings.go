package parser

type (
	// SettingClause represents the SET clause: an ordered list of session
	// settings (PostgreSQL GUCs) passed through verbatim to the executor.
	// Duplicates are permitted and preserved in textual order.
	SettingClause struct {
		Settings []*Setting `parser:"'SET' @@ (',' @@)*"`
	}

	// Setting is a single name/value session setting
	// Syntax: name ( "=" | TO ) 'quoted-value'
	Setting struct {
		Name  string `parser:"@Ident"`
		Value string `parser:"('=' | 'TO') @String"`
	}
)
