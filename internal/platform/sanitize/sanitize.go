// Package sanitize cleans untrusted note text with bluemonday allow-list
// policies. Sanitizer implements note.Sanitizer.
package sanitize

import (
	"html"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

var _ note.Sanitizer = (*Sanitizer)(nil)

// Schemes accepted in link targets. Relative URLs are accepted too.
var allowedSchemes = []string{"http", "https", "mailto"}

// Sanitizer builds one bluemonday policy per distinct allow-list and reuses
// it. It is safe for concurrent use.
type Sanitizer struct {
	strict   *bluemonday.Policy
	policies sync.Map // allow-list key -> *bluemonday.Policy
}

// New returns a Sanitizer.
func New() *Sanitizer {
	return &Sanitizer{strict: bluemonday.StrictPolicy()}
}

// Sanitize removes every element and attribute not in allowed. Text content
// is kept, except inside script and style elements. An empty allow-list
// strips all markup and returns plain text with entities decoded.
func (s *Sanitizer) Sanitize(raw string, allowed note.AllowedTags) string {
	if len(allowed) == 0 {
		return html.UnescapeString(s.strict.Sanitize(raw))
	}
	return s.policy(allowed).Sanitize(raw)
}

// EscapeURL returns raw with unsafe characters percent-encoded, or "" when
// raw does not parse or uses a scheme other than http, https or mailto.
func (s *Sanitizer) EscapeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "" && !slices.Contains(allowedSchemes, strings.ToLower(u.Scheme)) {
		return ""
	}
	return u.String()
}

func (s *Sanitizer) policy(allowed note.AllowedTags) *bluemonday.Policy {
	key := policyKey(allowed)
	if p, ok := s.policies.Load(key); ok {
		return p.(*bluemonday.Policy)
	}

	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes(allowedSchemes...)
	for element, attrs := range allowed {
		p.AllowElements(element)
		if len(attrs) > 0 {
			p.AllowAttrs(attrs...).OnElements(element)
		}
	}

	actual, _ := s.policies.LoadOrStore(key, p)
	return actual.(*bluemonday.Policy)
}

// policyKey renders an allow-list in a canonical form, for example
// "a=href,rel;br;p".
func policyKey(allowed note.AllowedTags) string {
	parts := make([]string, 0, len(allowed))
	for element, attrs := range allowed {
		sorted := slices.Clone(attrs)
		slices.Sort(sorted)
		if len(sorted) == 0 {
			parts = append(parts, element)
			continue
		}
		parts = append(parts, element+"="+strings.Join(sorted, ","))
	}
	slices.Sort(parts)
	return strings.Join(parts, ";")
}
