package note_test

import (
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

var (
	scriptRE = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	tagRE    = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)
)

// stubSanitizer drops script elements and any tag not in the allow-list.
type stubSanitizer struct{}

func (stubSanitizer) Sanitize(html string, allowed note.AllowedTags) string {
	html = scriptRE.ReplaceAllString(html, "")
	return tagRE.ReplaceAllStringFunc(html, func(tag string) string {
		name := strings.ToLower(tagRE.FindStringSubmatch(tag)[1])
		if _, ok := allowed[name]; ok {
			return tag
		}
		return ""
	})
}

func (stubSanitizer) EscapeURL(raw string) string {
	if strings.HasPrefix(strings.ToLower(raw), "javascript:") {
		return ""
	}
	return strings.ReplaceAll(raw, " ", "%20")
}

type fixedClock struct {
	now time.Time
	loc *time.Location
}

func (c fixedClock) Now() time.Time           { return c.now }
func (c fixedClock) Location() *time.Location { return c.loc }

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newSchema(opts ...note.SchemaOption) *note.Schema {
	opts = append([]note.SchemaOption{note.WithClock(fixedClock{now: testNow, loc: time.UTC})}, opts...)
	return note.NewSchema(stubSanitizer{}, opts...)
}
