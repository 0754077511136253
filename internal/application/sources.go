package application

import "langfield/internal/ports/output"

// SourceList keeps language sources in priority order: the first source
// registered is consulted first.
type SourceList struct {
	sources []output.LanguageSource
	ids     map[string]struct{}
}

func NewSourceList(sources ...output.LanguageSource) *SourceList {
	l := &SourceList{ids: make(map[string]struct{})}
	for _, src := range sources {
		l.Register(src)
	}
	return l
}

// Register appends src unless a source with the same id is already present.
// It reports whether src was added.
func (l *SourceList) Register(src output.LanguageSource) bool {
	if src == nil {
		return false
	}
	if _, dup := l.ids[src.ID()]; dup {
		return false
	}
	l.ids[src.ID()] = struct{}{}
	l.sources = append(l.sources, src)
	return true
}

// Sources returns the registered sources, highest priority first.
func (l *SourceList) Sources() []output.LanguageSource {
	out := make([]output.LanguageSource, len(l.sources))
	copy(out, l.sources)
	return out
}

func (l *SourceList) Len() int {
	return len(l.sources)
}
