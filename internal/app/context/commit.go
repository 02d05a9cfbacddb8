package appctx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/admin-notes-service/internal/platform/logging"
)

// CommitError reports the mutation that failed and any rollback that
// failed after it. It unwraps to the mutation's error.
type CommitError struct {
	Step     int
	Mutation string
	Err      error
	// Rollback holds errors from undoing earlier steps; usually empty.
	Rollback []error
}

func (e *CommitError) Error() string {
	msg := e.Mutation + ": " + e.Err.Error()
	if len(e.Rollback) > 0 {
		msg += fmt.Sprintf(" (rollback incomplete: %v)", errors.Join(e.Rollback...))
	}
	return msg
}

func (e *CommitError) Unwrap() error { return e.Err }

// Commit runs the staged mutations in order. On the first failure it rolls
// back the completed ones newest first and returns a *CommitError. The
// RequestContext cannot be committed or staged into again afterwards.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	staged := rc.staged
	rc.staged = nil
	rc.mu.Unlock()

	logger := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	for i, m := range staged {
		logger.DebugContext(ctx, "applying mutation",
			slog.Int("step", i+1),
			slog.Int("of", len(staged)),
			slog.String("mutation", m.Description()),
		)
		err := m.Execute(ctx)
		if err == nil {
			continue
		}

		cerr := &CommitError{Step: i + 1, Mutation: m.Description(), Err: err}
		for j := i - 1; j >= 0; j-- {
			if rerr := staged[j].Rollback(ctx); rerr != nil {
				cerr.Rollback = append(cerr.Rollback, fmt.Errorf("%s: %w", staged[j].Description(), rerr))
			}
		}
		logger.WarnContext(ctx, "mutation failed, earlier steps rolled back",
			slog.Int("step", cerr.Step),
			slog.String("mutation", cerr.Mutation),
			slog.Int("rollback_failures", len(cerr.Rollback)),
			slog.Any("error", err),
		)
		return cerr
	}
	return nil
}
