// Package note implements the admin note entity: a validated, mutable
// in-memory record of one dashboard notification together with its ordered
// list of user-triggerable actions.
//
// Notes are created through a Schema, which carries the collaborators the
// entity validates against: the type and status registries, the content
// sanitizer, and the clock used to normalize dates.
//
//	schema := note.NewSchema(sanitizer)
//	n := schema.New()
//	if err := n.SetTitle("New feature"); err != nil { ... }
//	if err := n.AddAction("try", "Try now"); err != nil { ... }
//
// Every setter validates its own field and either accepts the value or
// returns a *domain.ValidationError naming the field; a rejected value never
// replaces the previous one.
//
// A Note is not safe for concurrent use.
package note
