package syslog_test

import (
	"strings"
	"testing"

	. "github.com/noctarius/pgloader/pkg/syslog"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"rsyslog", "syslog", "syslog-draft-15"} {
		grammar, err := Lookup(name)
		require.NoError(t, err, name)
		require.Equal(t, name, grammar.Name)
		require.NotEmpty(t, grammar.ABNF)
	}

	// Lookup normalizes case the same way the command language does.
	grammar, err := Lookup("RSYSLOG")
	require.NoError(t, err)
	require.Equal(t, "rsyslog", grammar.Name)
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Lookup("unknownname")
	require.Error(t, err)

	var grammarErr *UnknownGrammarError
	require.ErrorAs(t, err, &grammarErr)
	require.Equal(t, "unknownname", grammarErr.Name)
	require.Equal(t, Names(), grammarErr.Known)
}

func TestNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"rsyslog", "syslog", "syslog-draft-15"}, Names())
}

func TestCombined(t *testing.T) {
	t.Parallel()

	spec := &GrammarSpec{
		Base:      "rsyslog",
		Extension: "\ntimestamp = full-date \"T\" partial-time\n",
		Fields:    []string{"timestamp"},
	}

	text, err := spec.Combined()
	require.NoError(t, err)

	base, err := Lookup("rsyslog")
	require.NoError(t, err)

	// Base first, then a blank line, then the trimmed extension.
	require.Equal(t,
		strings.TrimRight(base.ABNF, "\n")+"\n\ntimestamp = full-date \"T\" partial-time\n",
		text)
}

func TestCombinedWithoutExtension(t *testing.T) {
	t.Parallel()

	spec := &GrammarSpec{Base: "syslog"}

	text, err := spec.Combined()
	require.NoError(t, err)

	base, err := Lookup("syslog")
	require.NoError(t, err)
	require.Equal(t, strings.TrimRight(base.ABNF, "\n")+"\n", text)
}

func TestCombinedUnknownBase(t *testing.T) {
	t.Parallel()

	spec := &GrammarSpec{Base: "nope"}

	_, err := spec.Combined()
	require.Error(t, err)
}
