package output

// Translator renders user-facing messages for a locale.
type Translator interface {
	// T renders the message identified by key for the given locale, falling
	// back to the default locale. It returns key itself when no message exists.
	// data holds template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
