package syslog

import (
	"fmt"
	"strings"
)

// UnknownGrammarError reports a GRAMMAR clause naming a base grammar outside
// the built-in registry.
type UnknownGrammarError struct {
	Name  string
	Known []string
}

func (e *UnknownGrammarError) Error() string {
	return fmt.Sprintf("unknown syslog grammar %q (known grammars: %s)",
		e.Name, strings.Join(e.Known, ", "))
}
