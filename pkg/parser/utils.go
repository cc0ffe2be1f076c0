package parser

import "strings"

// Unquote strips the surrounding single quotes from a String token value and
// resolves backslash escapes for quotes and backslashes. Other escape pairs
// are passed through untouched so setting values stay verbatim.
func Unquote(value string) string {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		value = value[1 : len(value)-1]
	}

	var b strings.Builder
	b.Grow(len(value))

	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) {
			next := value[i+1]
			if next == '\'' || next == '\\' {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(value[i])
	}

	return b.String()
}
