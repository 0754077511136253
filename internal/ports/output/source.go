package output

// LanguageSource is an already-loaded language table supplied by a loader.
// Implementations must not change after registration.
type LanguageSource interface {
	// ID identifies the source; two sources with the same id are the same source.
	ID() string
	// Lookup returns the raw text for (pageID, textID), exact match only.
	Lookup(pageID, textID string) (string, bool)
}
