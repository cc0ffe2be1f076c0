package parser_test

import (
	"testing"

	. "github.com/noctarius/pgloader/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestGrammarClauseExtensionText(t *testing.T) {
	t.Parallel()

	input := "LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db" +
		" WITH GRAMMAR = rsyslog\n" +
		"timestamp = full-date \"T\" partial-time\n" +
		"hostname = 1*255PRINTUSASCII\n" +
		"REGISTERING timestamp, hostname;"

	program, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, program.Commands, 1)

	grammar := program.Commands[0].Syslog.Grammar
	require.Equal(t, "rsyslog", grammar.Name)
	require.Equal(t, []string{"timestamp", "hostname"}, grammar.Fields)

	// The extension span is recovered verbatim, line layout included.
	require.Equal(t,
		"timestamp = full-date \"T\" partial-time\nhostname = 1*255PRINTUSASCII",
		grammar.ExtensionText(program.Source))
}

func TestGrammarClauseExtensionKeepsAllTokens(t *testing.T) {
	t.Parallel()

	// Heavy ABNF punctuation lexes as many single-character tokens; the span
	// must cover the first through the last, not just the tail.
	input := "LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db" +
		" WITH GRAMMAR = rsyslog\n" +
		"msg = *OCTET %d33-126 1*3DIGIT\n" +
		"REGISTERING msg;"

	program, err := ParseString(input)
	require.NoError(t, err)

	grammar := program.Commands[0].Syslog.Grammar
	require.Equal(t, "msg = *OCTET %d33-126 1*3DIGIT", grammar.ExtensionText(program.Source))
}

func TestGrammarClauseWithoutExtension(t *testing.T) {
	t.Parallel()

	program, err := ParseString(
		"LOAD MESSAGES FROM syslog://localhost/ INTO postgresql://localhost/db" +
			" WITH GRAMMAR = syslog REGISTERING msg;")
	require.NoError(t, err)

	grammar := program.Commands[0].Syslog.Grammar
	require.Empty(t, grammar.ExtensionText(program.Source))
	require.Equal(t, []string{"msg"}, grammar.Fields)
}
