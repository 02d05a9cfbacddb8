package domain

import "context"

// Mutation is one staged store write that can undo its in-memory effect.
// It lives here so note-level code can stage writes without importing the
// application layer.
type Mutation interface {
	// Execute applies the write and should stop when ctx is done.
	Execute(ctx context.Context) error

	// Rollback undoes the in-memory effect of a completed write. When a later
	// mutation fails, Commit calls it on every earlier one, newest first.
	Rollback(ctx context.Context) error

	// Description names the write in logs, e.g. "set note 12 status to actioned".
	Description() string
}

// WriteStager is the part of the request context that stages writes.
type WriteStager interface {
	// Stage caches entity under key and queues m for Commit.
	Stage(key string, entity any, m Mutation) error
}
