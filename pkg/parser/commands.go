package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// FileLoadStmt represents file/stream load commands
	// Syntax: LOAD FROM <stdin | url | path> INTO pg-uri [WITH option, ...];
	FileLoadStmt struct {
		Pos       lexer.Position
		Source    *SourceClause  `parser:"'LOAD' 'FROM' @@"`
		Target    *ConnectionRef `parser:"'INTO' @@"`
		Options   *OptionClause  `parser:"@@?"`
		Semicolon bool           `parser:"';'"`
	}

	// DatabaseLoadStmt represents database migration commands
	// Syntax: LOAD DATABASE FROM mysql-uri INTO pg-uri
	//         [WITH option, ...] [SET name = 'value', ...] [CAST rule, ...];
	DatabaseLoadStmt struct {
		Pos       lexer.Position
		Source    *ConnectionRef `parser:"'LOAD' 'DATABASE' 'FROM' @@"`
		Target    *ConnectionRef `parser:"'INTO' @@"`
		Options   *OptionClause  `parser:"@@?"`
		Settings  *SettingClause `parser:"@@?"`
		Casts     *CastClause    `parser:"@@?"`
		Semicolon bool           `parser:"';'"`
	}

	// SyslogLoadStmt represents syslog message stream commands
	// Syntax: LOAD MESSAGES FROM syslog-uri INTO pg-uri
	//         [SET name = 'value', ...]
	//         WITH GRAMMAR = name <extension> REGISTERING field, ...;
	SyslogLoadStmt struct {
		Pos       lexer.Position
		Source    *ConnectionRef `parser:"'LOAD' 'MESSAGES' 'FROM' @@"`
		Target    *ConnectionRef `parser:"'INTO' @@"`
		Settings  *SettingClause `parser:"@@?"`
		Grammar   *GrammarClause `parser:"@@"`
		Semicolon bool           `parser:"';'"`
	}

	// ConnectionRef is a raw connection URI as written in the command text.
	// Decomposition into scheme, credentials, host, port, dbname, and table
	// hint happens during command assembly, where scheme defaults are applied.
	ConnectionRef struct {
		Pos lexer.Position
		URI string `parser:"@ConnURI"`
	}
)
