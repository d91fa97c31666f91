package attendance

import (
	"context"
)

// Source tells callers where the filtering of a fetch happened. Queries the
// document store can satisfy directly report SourceStore; queries that had
// to narrow a broader result set in process report SourceMemory.
type Source string

const (
	SourceStore  Source = "store"
	SourceMemory Source = "memory"
)

// FetchResult carries raw documents plus the source discriminator. The raw
// payloads go through the Normalizer before any aggregation.
type FetchResult struct {
	Docs   []RawDoc
	Source Source
}

// RawDoc is one attendance document as the store returned it, untyped.
type RawDoc struct {
	ID   string
	Data map[string]any
}

// Repository defines data access for attendance records.
type Repository interface {
	// FindByEmployeeAndDate returns the record for one employee on one
	// date, or ErrRecordNotFound.
	FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (RawDoc, error)

	// Insert writes a new record under its composite key. A concurrent
	// insert for the same employee and date yields ErrDuplicateRecord.
	Insert(ctx context.Context, rec Record) (string, error)

	// Update overwrites the stored fields of an existing record.
	Update(ctx context.Context, id string, rec Record) error

	// FetchByDate returns all records for a single date.
	FetchByDate(ctx context.Context, date string) (FetchResult, error)

	// FetchByDateRange returns all records in the half-open window.
	FetchByDateRange(ctx context.Context, w Window) (FetchResult, error)

	// FetchByEmployeeAndRange returns one employee's records in the
	// window. The store only ranges on date, so the employee filter is
	// applied in memory and the result reports SourceMemory.
	FetchByEmployeeAndRange(ctx context.Context, employeeID string, w Window) (FetchResult, error)

	// FetchRecent returns the most recently written records, newest
	// first, capped at limit.
	FetchRecent(ctx context.Context, limit int) (FetchResult, error)

	// CountByEmployee reports how many records reference an employee.
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}
