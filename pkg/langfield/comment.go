package langfield

import "strings"

const escapeChar = '\\'

// StripComments removes every `( ... )` span whose delimiters are not
// preceded by a backslash. Spans do not nest: a span ends at the first
// unescaped `)` after its opening `(`, and anything inside it, escaped
// parentheses included, goes with it. Escaped parentheses outside a span
// are left for DecodeEscapes.
func StripComments(text string) string {
	for {
		out, changed := stripOnce(text)
		if !changed {
			return out
		}
		text = out
	}
}

func stripOnce(text string) (string, bool) {
	if strings.IndexByte(text, '(') < 0 {
		return text, false
	}

	var b strings.Builder
	changed := false
	last := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '(' || escaped(text, i) {
			continue
		}
		end := closing(text, i+1)
		if end < 0 {
			// no later span can close either
			break
		}
		if !changed {
			b.Grow(len(text))
			changed = true
		}
		b.WriteString(text[last:i])
		last = end + 1
		i = end
	}
	if !changed {
		return text, false
	}
	b.WriteString(text[last:])
	return b.String(), true
}

// closing returns the index of the first unescaped ')' at or after from, or -1.
func closing(text string, from int) int {
	for j := from; j < len(text); j++ {
		if text[j] == ')' && !escaped(text, j) {
			return j
		}
	}
	return -1
}

func escaped(text string, i int) bool {
	return i > 0 && text[i-1] == escapeChar
}
