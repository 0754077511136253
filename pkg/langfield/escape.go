package langfield

import (
	"strings"
	"unicode/utf8"
)

// escapes maps an escaped character to its replacement. Characters absent
// from the table decode to themselves.
var escapes = map[rune]string{
	'n': "\n",
}

// DecodeEscapes replaces each `\c` sequence with the decoded form of c in a
// single left-to-right pass. A trailing lone backslash is kept.
func DecodeEscapes(text string) string {
	if strings.IndexByte(text, escapeChar) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != escapeChar || i+1 >= len(text) {
			b.WriteByte(text[i])
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i+1:])
		if s, ok := escapes[r]; ok {
			b.WriteString(s)
		} else {
			b.WriteString(text[i+1 : i+1+size])
		}
		i += 1 + size
	}
	return b.String()
}
