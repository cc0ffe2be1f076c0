package load

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/noctarius/pgloader/pkg/parser"
	"github.com/noctarius/pgloader/pkg/syslog"
)

// Compile assembles a parsed AST into an executable program descriptor. This
// is where semantics happen: connection URIs are decomposed and given their
// scheme defaults, options are merged, quoted values are unquoted, and load
// targets are validated to be PostgreSQL connections.
//
// Commands are compiled strictly in source order; the first failing command
// aborts the whole compile, matching the parser's no-partial-result contract.
func Compile(program *parser.Program) (*Program, error) {
	compiled := &Program{Commands: make([]*Command, 0, len(program.Commands))}

	for _, cmd := range program.Commands {
		command, err := compileCommand(program.Source, cmd)
		if err != nil {
			return nil, err
		}

		compiled.Commands = append(compiled.Commands, command)
	}

	return compiled, nil
}

// ParseString parses and compiles LOAD commands in one step. This is the
// entry point most callers want; parser.ParseString remains available when
// only the raw AST is of interest.
func ParseString(input string) (*Program, error) {
	ast, err := parser.ParseString(input)
	if err != nil {
		return nil, err
	}

	return Compile(ast)
}

// ParseFile parses and compiles the LOAD commands in the file at path.
func ParseFile(path string) (*Program, error) {
	ast, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return Compile(ast)
}

func compileCommand(source string, cmd *parser.Command) (*Command, error) {
	switch {
	case cmd.File != nil:
		fl, err := compileFileLoad(cmd.File)
		if err != nil {
			return nil, err
		}
		return &Command{File: fl}, nil

	case cmd.Database != nil:
		dl, err := compileDatabaseLoad(cmd.Database)
		if err != nil {
			return nil, err
		}
		return &Command{Database: dl}, nil

	case cmd.Syslog != nil:
		sl, err := compileSyslogLoad(source, cmd.Syslog)
		if err != nil {
			return nil, err
		}
		return &Command{Syslog: sl}, nil
	}

	return nil, errors.New("empty load command")
}

func compileFileLoad(stmt *parser.FileLoadStmt) (*FileLoad, error) {
	src, err := compileSource(stmt.Source)
	if err != nil {
		return nil, err
	}

	target, err := compileTarget(stmt.Target)
	if err != nil {
		return nil, err
	}

	return &FileLoad{
		Source:  src,
		Target:  target,
		Options: compileOptions(stmt.Options),
	}, nil
}

func compileDatabaseLoad(stmt *parser.DatabaseLoadStmt) (*DatabaseLoad, error) {
	src, err := compileConnection(stmt.Source)
	if err != nil {
		return nil, err
	}

	if src.DBName == nil {
		return nil, errors.Errorf("%s: database source requires a database name: %s",
			stmt.Source.Pos, stmt.Source.URI)
	}

	target, err := compileTarget(stmt.Target)
	if err != nil {
		return nil, err
	}

	return &DatabaseLoad{
		Source:   src,
		Target:   target,
		Options:  compileOptions(stmt.Options),
		Settings: compileSettings(stmt.Settings),
		Casts:    compileCasts(stmt.Casts),
	}, nil
}

func compileSyslogLoad(source string, stmt *parser.SyslogLoadStmt) (*SyslogLoad, error) {
	src, err := compileConnection(stmt.Source)
	if err != nil {
		return nil, err
	}

	target, err := compileTarget(stmt.Target)
	if err != nil {
		return nil, err
	}

	// Resolving the base grammar now surfaces unknown names at compile time
	// instead of handing the listener a grammar with an empty base.
	if _, err := syslog.Lookup(stmt.Grammar.Name); err != nil {
		return nil, errors.Wrapf(err, "%s", stmt.Grammar.Pos)
	}

	fields := make([]string, len(stmt.Grammar.Fields))
	copy(fields, stmt.Grammar.Fields)

	return &SyslogLoad{
		Source:   src,
		Target:   target,
		Settings: compileSettings(stmt.Settings),
		Grammar: &syslog.GrammarSpec{
			Base:      strings.ToLower(stmt.Grammar.Name),
			Extension: stmt.Grammar.ExtensionText(source),
			Fields:    fields,
		},
	}, nil
}

// compileTarget decomposes a target connection URI and enforces the one
// semantic rule every command shares: the target must be PostgreSQL, with a
// database name.
func compileTarget(ref *parser.ConnectionRef) (*ConnectionInfo, error) {
	info, err := compileConnection(ref)
	if err != nil {
		return nil, err
	}

	if info.Scheme != SchemePostgreSQL {
		return nil, &TargetSchemeError{URI: ref.URI, Scheme: info.Scheme, Position: ref.Pos}
	}

	if info.DBName == nil {
		return nil, errors.Errorf("%s: target requires a database name: %s", ref.Pos, ref.URI)
	}

	return info, nil
}

func compileConnection(ref *parser.ConnectionRef) (*ConnectionInfo, error) {
	info, err := ParseConnectionURI(ref.URI)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", ref.Pos)
	}

	return info, nil
}

func compileSource(clause *parser.SourceClause) (*Source, error) {
	switch {
	case clause.Stdin:
		return &Source{Kind: SourceStdin}, nil

	case clause.URI != nil:
		lowered := strings.ToLower(*clause.URI)
		if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
			return &Source{Kind: SourceHTTP, URL: *clause.URI}, nil
		}

		info, err := ParseConnectionURI(*clause.URI)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", clause.Pos)
		}
		return &Source{Kind: SourceDatabase, Connection: info}, nil

	case clause.Quoted != nil:
		return &Source{Kind: SourceFile, Path: parser.Unquote(*clause.Quoted)}, nil

	case clause.Path != nil:
		return &Source{Kind: SourceFile, Path: *clause.Path}, nil
	}

	return nil, errors.Errorf("%s: empty load source", clause.Pos)
}

func compileOptions(clause *parser.OptionClause) *Options {
	options := &Options{}
	if clause == nil {
		return options
	}

	for _, opt := range clause.Options {
		options.apply(opt)
	}

	return options
}

func compileSettings(clause *parser.SettingClause) Settings {
	if clause == nil {
		return nil
	}

	settings := make(Settings, 0, len(clause.Settings))
	for _, s := range clause.Settings {
		settings = append(settings, Setting{Name: s.Name, Value: parser.Unquote(s.Value)})
	}

	return settings
}

func compileCasts(clause *parser.CastClause) CastRules {
	if clause == nil {
		return nil
	}

	rules := make(CastRules, 0, len(clause.Rules))
	for _, stmt := range clause.Rules {
		rules = append(rules, compileCastRule(stmt))
	}

	return rules
}

// compileCastRule folds the repeated definition sub-clauses into one rule.
// Per sub-clause kind the first occurrence takes effect: a second TO clause
// in the same rule is ignored rather than overriding the first.
func compileCastRule(stmt *parser.CastRuleStmt) *CastRule {
	rule := &CastRule{
		AutoIncrementExtra: stmt.Extra,
		Transform:          stmt.Using,
	}

	if stmt.Source.Column != nil {
		name := identValue(*stmt.Source.Column)
		rule.Column = &name
	} else if stmt.Source.Type != nil {
		name := identValue(*stmt.Source.Type)
		rule.Type = &name
	}

	for _, def := range stmt.Defs {
		switch {
		case def.To != nil:
			if rule.TargetType == nil {
				target := identValue(*def.To)
				rule.TargetType = &target
			}
		case def.DropDefault:
			rule.DropDefault = true
		case def.DropNotNull:
			rule.DropNotNull = true
		}
	}

	return rule
}

// identValue normalizes a token that may be either a bare identifier or a
// quoted string.
func identValue(token string) string {
	if strings.HasPrefix(token, "'") {
		return parser.Unquote(token)
	}

	return token
}
