package docstore

import (
	"context"
	"errors"
)

// Store errors
var (
	ErrNotFound    = errors.New("document not found")
	ErrExists      = errors.New("document already exists")
	ErrUnavailable = errors.New("document store unavailable")
)

// Op is a filter operator. The store supports equality and range
// comparisons on top-level fields only.
type Op string

const (
	OpEq  Op = "=="
	OpGte Op = ">="
	OpLt  Op = "<"
)

type Filter struct {
	Field string
	Op    Op
	Value any
}

type OrderBy struct {
	Field string
	Desc  bool
}

// Document is a record as the store returns it: an opaque id plus a
// loosely-typed field mapping with no schema guarantee.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is the generic document-store capability. Implementations must
// wrap transport/backend failures in ErrUnavailable so callers can
// distinguish "store down" from "not there".
type Store interface {
	// Get retrieves a single document by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Query returns documents matching all filters, optionally ordered by a
	// single top-level field and limited. No compound-index guarantees:
	// callers needing a secondary sort do it in memory.
	Query(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]Document, error)

	// Insert stores a new document under a generated id and returns the id.
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)

	// InsertWithID stores a new document under the given id, failing with
	// ErrExists when the id is already taken. This is the conditional write
	// that closes the concurrent find-or-insert race.
	InsertWithID(ctx context.Context, collection, id string, data map[string]any) error

	// Update overwrites the fields of an existing document.
	// Returns ErrNotFound if absent.
	Update(ctx context.Context, collection, id string, data map[string]any) error

	// Delete removes a document. Returns ErrNotFound if absent.
	Delete(ctx context.Context, collection, id string) error
}
