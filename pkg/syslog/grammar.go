package syslog

import (
	"sort"
	"strings"
)

type (
	// Grammar is a built-in ABNF grammar description for one syslog message
	// format. The text is fed to an external ABNF-to-parser compiler.
	Grammar struct {
		Name string
		ABNF string
	}

	// GrammarSpec combines a built-in base grammar with inline extension text
	// and the ordered list of named productions whose matches become
	// extracted message fields.
	GrammarSpec struct {
		Base      string
		Extension string
		Fields    []string
	}
)

// builtins is the fixed registry of known base grammars. There is no runtime
// registration: the set mirrors the message formats the listener understands.
var builtins = map[string]*Grammar{
	"rsyslog":         {Name: "rsyslog", ABNF: rsyslogABNF},
	"syslog":          {Name: "syslog", ABNF: syslogABNF},
	"syslog-draft-15": {Name: "syslog-draft-15", ABNF: syslogDraft15ABNF},
}

// Lookup resolves a base grammar name against the built-in registry. Unknown
// names are a hard error; silently proceeding with an empty base grammar
// would produce a message parser that matches nothing.
func Lookup(name string) (*Grammar, error) {
	if g, ok := builtins[strings.ToLower(name)]; ok {
		return g, nil
	}

	return nil, &UnknownGrammarError{Name: name, Known: Names()}
}

// Names returns the sorted names of all built-in grammars.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Combined resolves the base grammar and appends the extension text with a
// blank-line separator, forming the single grammar document the external
// ABNF compiler consumes.
func (s *GrammarSpec) Combined() (string, error) {
	base, err := Lookup(s.Base)
	if err != nil {
		return "", err
	}

	text := strings.TrimRight(base.ABNF, "\n")
	if ext := strings.TrimSpace(s.Extension); ext != "" {
		text += "\n\n" + ext
	}

	return text + "\n", nil
}
