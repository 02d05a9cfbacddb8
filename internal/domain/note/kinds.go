package note

// Type classifies how a note is presented.
type Type string

const (
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeUpdate  Type = "update"
	TypeInfo    Type = "info"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Status is the lifecycle state of a note.
type Status string

const (
	StatusUnactioned Status = "unactioned"
	StatusActioned   Status = "actioned"
	StatusSnoozed    Status = "snoozed"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
