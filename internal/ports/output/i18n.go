package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations resolve the language fields in key for a given locale.
type T interface {
	// T renders key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
