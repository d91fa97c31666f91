package attendance

import (
	"context"
)

// Service defines business logic for attendance marking.
type Service interface {
	// Mark records or updates one employee's status for a date.
	// Marking an existing record replaces its status and comment.
	Mark(ctx context.Context, req MarkRequest) (MarkResponse, error)

	// MarkAll records statuses for many employees on one date. Entries
	// with an empty status are skipped; the batch is not atomic.
	MarkAll(ctx context.Context, req BatchMarkRequest) (BatchMarkResponse, error)
}
