package entities

import "sort"

// Source is an immutable language table: page id -> text id -> raw text.
// The id identifies the source for de-duplication only.
type Source struct {
	id    string
	pages map[string]map[string]string
}

// NewSource copies pages, so the caller may keep mutating its own maps.
func NewSource(id string, pages map[string]map[string]string) *Source {
	cp := make(map[string]map[string]string, len(pages))
	for page, texts := range pages {
		m := make(map[string]string, len(texts))
		for text, raw := range texts {
			m[text] = raw
		}
		cp[page] = m
	}
	return &Source{id: id, pages: cp}
}

func (s *Source) ID() string {
	return s.id
}

// Lookup returns the raw text stored under (pageID, textID). Keys must match
// exactly.
func (s *Source) Lookup(pageID, textID string) (string, bool) {
	texts, ok := s.pages[pageID]
	if !ok {
		return "", false
	}
	raw, ok := texts[textID]
	return raw, ok
}

// Pages returns the page ids in ascending order.
func (s *Source) Pages() []string {
	out := make([]string, 0, len(s.pages))
	for page := range s.pages {
		out = append(out, page)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of texts across all pages.
func (s *Source) Len() int {
	n := 0
	for _, texts := range s.pages {
		n += len(texts)
	}
	return n
}
