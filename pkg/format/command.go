package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/noctarius/pgloader/pkg/load"
)

// fileLoad renders LOAD FROM <source> INTO <target> [WITH ...].
func (f *Formatter) fileLoad(cmd *load.FileLoad) string {
	lines := []string{
		f.keyword("LOAD FROM") + " " + f.source(cmd.Source),
		f.indent() + f.keyword("INTO") + " " + cmd.Target.String(),
	}

	lines = f.appendOptions(lines, cmd.Options)
	return strings.Join(lines, "\n")
}

// databaseLoad renders LOAD DATABASE FROM ... INTO ... [WITH] [SET] [CAST].
func (f *Formatter) databaseLoad(cmd *load.DatabaseLoad) string {
	lines := []string{
		f.keyword("LOAD DATABASE FROM") + " " + cmd.Source.String(),
		f.indent() + f.keyword("INTO") + " " + cmd.Target.String(),
	}

	lines = f.appendOptions(lines, cmd.Options)
	lines = f.appendSettings(lines, cmd.Settings)

	if len(cmd.Casts) > 0 {
		rules := make([]string, 0, len(cmd.Casts))
		for _, rule := range cmd.Casts {
			rules = append(rules, f.castRule(rule))
		}
		lines = append(lines, f.indent()+f.keyword("CAST")+" "+strings.Join(rules, ", "))
	}

	return strings.Join(lines, "\n")
}

// syslogLoad renders LOAD MESSAGES FROM ... INTO ... [SET] WITH GRAMMAR.
// Grammar extension text is emitted verbatim between the grammar name and
// the REGISTERING keyword, as ABNF is line-oriented.
func (f *Formatter) syslogLoad(cmd *load.SyslogLoad) string {
	lines := []string{
		f.keyword("LOAD MESSAGES FROM") + " " + cmd.Source.String(),
		f.indent() + f.keyword("INTO") + " " + cmd.Target.String(),
	}

	lines = f.appendSettings(lines, cmd.Settings)
	lines = append(lines, f.indent()+f.keyword("WITH GRAMMAR")+" = "+cmd.Grammar.Base)

	if ext := strings.TrimSpace(cmd.Grammar.Extension); ext != "" {
		lines = append(lines, ext)
	}

	lines = append(lines,
		f.indent()+f.keyword("REGISTERING")+" "+strings.Join(cmd.Grammar.Fields, ", "))

	return strings.Join(lines, "\n")
}

// appendOptions appends a WITH line in canonical option order. The merged
// option set has no textual order left, so a fixed order keeps output stable.
func (f *Formatter) appendOptions(lines []string, options *load.Options) []string {
	if options == nil || options.IsZero() {
		return lines
	}

	var parts []string

	if options.Workers != nil {
		parts = append(parts, fmt.Sprintf("%s = %d", f.keyword("workers"), *options.Workers))
	}
	if options.BatchRows != nil {
		parts = append(parts, fmt.Sprintf("%s = %d", f.keyword("batch rows"), *options.BatchRows))
	}
	if options.BatchSize != nil {
		parts = append(parts, fmt.Sprintf("%s = %d", f.keyword("batch size"), *options.BatchSize))
	}
	if options.PrefetchRows != nil {
		parts = append(parts, fmt.Sprintf("%s = %d", f.keyword("prefetch rows"), *options.PrefetchRows))
	}
	if options.IncludeDrop {
		parts = append(parts, f.keyword("drop tables"))
	}
	if options.Truncate {
		parts = append(parts, f.keyword("truncate"))
	}
	if options.CreateTables {
		parts = append(parts, f.keyword("create tables"))
	}
	if options.CreateIndexes {
		parts = append(parts, f.keyword("create indexes"))
	}
	if options.ResetSequences {
		parts = append(parts, f.keyword("reset sequences"))
	}

	return append(lines, f.indent()+f.keyword("WITH")+" "+strings.Join(parts, ", "))
}

// appendSettings appends a SET line preserving setting order and duplicates.
func (f *Formatter) appendSettings(lines []string, settings load.Settings) []string {
	if len(settings) == 0 {
		return lines
	}

	parts := make([]string, 0, len(settings))
	for _, s := range settings {
		parts = append(parts, s.Name+" = "+quote(s.Value))
	}

	return append(lines, f.indent()+f.keyword("SET")+" "+strings.Join(parts, ", "))
}

// castRule renders one cast rule with its sub-clauses in canonical order.
func (f *Formatter) castRule(rule *load.CastRule) string {
	var parts []string

	switch {
	case rule.Column != nil:
		parts = append(parts, f.keyword("column"), *rule.Column)
	case rule.Type != nil:
		parts = append(parts, f.keyword("type"), *rule.Type)
	}

	if rule.AutoIncrementExtra {
		parts = append(parts, f.keyword("with extra auto_increment"))
	}

	if rule.TargetType != nil {
		parts = append(parts, f.keyword("to"), *rule.TargetType)
	}
	if rule.DropDefault {
		parts = append(parts, f.keyword("drop default"))
	}
	if rule.DropNotNull {
		parts = append(parts, f.keyword("drop not null"))
	}

	if rule.Transform != nil {
		parts = append(parts, f.keyword("using"), *rule.Transform)
	}

	return strings.Join(parts, " ")
}

// source renders a file load source, re-quoting paths that would not lex as a
// bare path token.
func (f *Formatter) source(src *load.Source) string {
	if src.Kind == load.SourceFile && !barePath.MatchString(src.Path) {
		return quote(src.Path)
	}

	return src.String()
}

// barePath mirrors the lexer's bare path token class.
var barePath = regexp.MustCompile(`^[a-zA-Z0-9_~./-]*[./][a-zA-Z0-9_~./-]*$`)

// quote renders a single-quoted value with backslash escapes, the inverse of
// the parser's Unquote.
func quote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}
