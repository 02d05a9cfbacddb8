package note

// AllowedTags maps an element name to the attributes permitted on it.
// An empty AllowedTags strips all markup and yields plain text.
type AllowedTags map[string][]string

// Sanitizer cleans untrusted text before it is stored on a note.
type Sanitizer interface {
	// Sanitize removes all markup not present in allowed and returns the
	// cleaned HTML. With an empty allow-list the result is plain text:
	// entities are decoded, not escaped.
	Sanitize(html string, allowed AllowedTags) string

	// EscapeURL returns raw in a form safe to render as a link target, or
	// an empty string if raw cannot be made safe.
	EscapeURL(raw string) string
}

// ContentTags returns the inline markup accepted in note content.
func ContentTags() AllowedTags {
	return AllowedTags{
		"br":     nil,
		"em":     nil,
		"strong": nil,
		"a":      {"href", "rel", "name", "target", "download"},
		"p":      nil,
	}
}
