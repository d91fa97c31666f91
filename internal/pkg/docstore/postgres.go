package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresStore keeps every collection in a single documents table:
//
//	CREATE TABLE documents (
//	    collection TEXT NOT NULL,
//	    id         TEXT NOT NULL,
//	    data       JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (collection, id)
//	);
//
// Filters compile to data->>'field' comparisons, so only top-level fields
// are queryable, matching the capability contract.
type postgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("%w: get %s/%s: %v", ErrUnavailable, collection, id, err)
	}

	data, err := decodeData(raw)
	if err != nil {
		return Document{}, fmt.Errorf("decode document %s/%s: %w", collection, id, err)
	}
	return Document{ID: id, Data: data}, nil
}

func (s *postgresStore) Query(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]Document, error) {
	where := []string{"collection = $1"}
	args := []any{collection}
	argIdx := 2

	for _, f := range filters {
		op, ok := sqlOp(f.Op)
		if !ok {
			return nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}
		where = append(where, fmt.Sprintf("data->>'%s' %s $%d", sanitizeField(f.Field), op, argIdx))
		args = append(args, fmt.Sprint(f.Value))
		argIdx++
	}

	query := "SELECT id, data FROM documents WHERE " + strings.Join(where, " AND ")
	if orderBy != nil {
		dir := "ASC"
		if orderBy.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY data->>'%s' %s", sanitizeField(orderBy.Field), dir)
	}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrUnavailable, collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		data, err := decodeData(raw)
		if err != nil {
			return nil, fmt.Errorf("decode document %s/%s: %w", collection, id, err)
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrUnavailable, collection, err)
	}
	return docs, nil
}

func (s *postgresStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.InsertWithID(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *postgresStore) InsertWithID(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, raw,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrExists
		}
		return fmt.Errorf("%w: insert %s/%s: %v", ErrUnavailable, collection, id, err)
	}
	return nil
}

func (s *postgresStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE documents SET data = $3, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, raw,
	)
	if err != nil {
		return fmt.Errorf("%w: update %s/%s: %v", ErrUnavailable, collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", ErrUnavailable, collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func sqlOp(op Op) (string, bool) {
	switch op {
	case OpEq:
		return "=", true
	case OpGte:
		return ">=", true
	case OpLt:
		return "<", true
	}
	return "", false
}

// sanitizeField guards the field name interpolated into the JSONB path.
func sanitizeField(field string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return -1
	}, field)
}

func decodeData(raw []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
