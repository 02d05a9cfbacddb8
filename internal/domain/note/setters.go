package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

const msgEmptyAfterSanitize = "is empty after sanitization"

// SetName sets the machine identifier.
func (n *Note) SetName(name string) error {
	if err := requireText(FieldName, name); err != nil {
		return err
	}
	n.name = name
	n.touch(FieldName)
	return nil
}

// SetType sets the note type. t must be in the type registry's current
// allowed set.
func (n *Note) SetType(t Type) error {
	if err := requireText(FieldType, string(t)); err != nil {
		return err
	}
	if !n.schema.types.Allows(t) {
		return domain.NewFieldError(string(FieldType), fmt.Sprintf("unsupported type %q", t))
	}
	n.typ = t
	n.touch(FieldType)
	return nil
}

// SetLocale sets the locale tag.
func (n *Note) SetLocale(locale string) error {
	if err := requireText(FieldLocale, locale); err != nil {
		return err
	}
	n.locale = locale
	n.touch(FieldLocale)
	return nil
}

// SetTitle sets the title.
func (n *Note) SetTitle(title string) error {
	if err := requireText(FieldTitle, title); err != nil {
		return err
	}
	n.title = title
	n.touch(FieldTitle)
	return nil
}

// SetContent sanitizes html against ContentTags and stores the result.
// Stripped markup is not an error, an empty result is.
func (n *Note) SetContent(html string) error {
	if err := requireText(FieldContent, html); err != nil {
		return err
	}
	clean := n.schema.sanitizer.Sanitize(html, ContentTags())
	if strings.TrimSpace(clean) == "" {
		return domain.NewFieldError(string(FieldContent), msgEmptyAfterSanitize)
	}
	n.content = clean
	n.touch(FieldContent)
	return nil
}

// SetIcon sets the icon identifier.
func (n *Note) SetIcon(icon string) error {
	if err := requireText(FieldIcon, icon); err != nil {
		return err
	}
	n.icon = icon
	n.touch(FieldIcon)
	return nil
}

// SetContentData sets the content data. v may be any value whose JSON
// encoding is an object, including json.RawMessage; an empty object is
// accepted.
func (n *Note) SetContentData(v any) error {
	data, err := toContentData(v)
	if err != nil {
		return domain.NewFieldError(string(FieldContentData), err.Error())
	}
	n.contentData = data
	n.touch(FieldContentData)
	return nil
}

// SetStatus sets the lifecycle status. s must be in the status registry's
// current allowed set.
func (n *Note) SetStatus(s Status) error {
	if err := requireText(FieldStatus, string(s)); err != nil {
		return err
	}
	if !n.schema.statuses.Allows(s) {
		return domain.NewFieldError(string(FieldStatus), fmt.Sprintf("unsupported status %q", s))
	}
	n.status = s
	n.touch(FieldStatus)
	return nil
}

// SetSource sets the origin tag.
func (n *Note) SetSource(source string) error {
	if err := requireText(FieldSource, source); err != nil {
		return err
	}
	n.source = source
	n.touch(FieldSource)
	return nil
}

// SetDateCreated sets the creation date. An empty input is rejected.
func (n *Note) SetDateCreated(d DateInput) error {
	if d == nil {
		return domain.NewFieldError(string(FieldDateCreated), domain.MsgRequired)
	}
	t, err := d.resolve(n.schema.clock.Location())
	if err != nil {
		return domain.NewFieldError(string(FieldDateCreated), err.Error())
	}
	if t.IsZero() {
		return domain.NewFieldError(string(FieldDateCreated), domain.MsgRequired)
	}
	n.dateCreated = t.UTC()
	n.touch(FieldDateCreated)
	return nil
}

// SetDateReminder sets the reminder date. A nil or empty input clears it.
func (n *Note) SetDateReminder(d DateInput) error {
	var t time.Time
	if d != nil {
		resolved, err := d.resolve(n.schema.clock.Location())
		if err != nil {
			return domain.NewFieldError(string(FieldDateReminder), err.Error())
		}
		t = resolved
	}
	if !t.IsZero() {
		t = t.UTC()
	}
	n.dateReminder = t
	n.touch(FieldDateReminder)
	return nil
}

// SetIsSnoozable sets whether the note may be snoozed.
func (n *Note) SetIsSnoozable(snoozable bool) {
	n.isSnoozable = snoozable
	n.touch(FieldIsSnoozable)
}

func requireText(f Field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewFieldError(string(f), domain.MsgRequired)
	}
	return nil
}
