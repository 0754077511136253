// Package langfield holds the pure text operations used to resolve language
// fields: placeholder scanning, comment removal and escape decoding.
package langfield

// Placeholder is a `{page,text}` reference found in a string.
// Start and End are byte offsets; text[Start:End] is the whole reference.
type Placeholder struct {
	PageID string // empty when the page id was omitted
	TextID string
	Start  int
	End    int
}

// HasPageID reports whether the placeholder carries an explicit page id.
func (p Placeholder) HasPageID() bool {
	return p.PageID != ""
}

// Scan returns the left-most placeholder of the form
// `{ [pageID] , textID }` in text. Malformed references are ignored.
func Scan(text string) (Placeholder, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		if p, ok := scanAt(text, i); ok {
			return p, true
		}
	}
	return Placeholder{}, false
}

func scanAt(text string, start int) (Placeholder, bool) {
	i := skipSpace(text, start+1)

	pageStart := i
	i = skipDigits(text, i)
	page := text[pageStart:i]

	i = skipSpace(text, i)
	if i >= len(text) || text[i] != ',' {
		return Placeholder{}, false
	}
	i = skipSpace(text, i+1)

	textStart := i
	i = skipDigits(text, i)
	if i == textStart {
		return Placeholder{}, false
	}
	id := text[textStart:i]

	i = skipSpace(text, i)
	if i >= len(text) || text[i] != '}' {
		return Placeholder{}, false
	}

	return Placeholder{PageID: page, TextID: id, Start: start, End: i + 1}, true
}

func skipSpace(text string, i int) int {
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return i
}

func skipDigits(text string, i int) int {
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
