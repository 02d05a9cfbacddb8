package note

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
)

// ContentData is the structured record of raw values a note's content was
// generated from, so the note can be regenerated in another locale.
type ContentData map[string]any

var errNotRecord = errors.New("must be a key-value record")

// toContentData accepts anything whose JSON form is an object. Lists,
// scalars and nil are rejected.
func toContentData(v any) (ContentData, error) {
	var raw []byte
	switch d := v.(type) {
	case json.RawMessage:
		raw = d
	case []byte:
		raw = d
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errNotRecord
		}
		raw = b
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errNotRecord
	}

	var out ContentData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errNotRecord
	}
	if out == nil {
		out = ContentData{}
	}
	return out, nil
}

// Clone returns a shallow copy of d.
func (d ContentData) Clone() ContentData {
	if d == nil {
		return ContentData{}
	}
	return maps.Clone(d)
}
