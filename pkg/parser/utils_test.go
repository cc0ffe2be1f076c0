package parser_test

import (
	"testing"

	. "github.com/noctarius/pgloader/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "'value'", want: "value"},
		{name: "empty", input: "''", want: ""},
		{name: "spaces", input: "'two words'", want: "two words"},
		{name: "escaped_quote", input: `'it\'s'`, want: "it's"},
		{name: "escaped_backslash", input: `'a\\b'`, want: `a\b`},
		{name: "other_escape_untouched", input: `'a\nb'`, want: `a\nb`},
		{name: "unquoted_passthrough", input: "bare", want: "bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Unquote(tt.input))
		})
	}
}
