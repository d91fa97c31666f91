package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store. Documents round-trip through JSON on
// write so reads see the same loosely-typed shapes a remote store would
// return (time.Time becomes an RFC3339 string, ints become float64).
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	docs  map[string]map[string]any
	order []string // insertion order, for stable unordered queries
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[collection]
	if !ok {
		return Document{}, ErrNotFound
	}
	data, ok := col.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: cloneData(data)}, nil
}

func (s *MemoryStore) Query(_ context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	var docs []Document
	for _, id := range col.order {
		data, ok := col.docs[id]
		if !ok {
			continue
		}
		if matchesAll(data, filters) {
			docs = append(docs, Document{ID: id, Data: cloneData(data)})
		}
	}

	if orderBy != nil {
		field, desc := orderBy.Field, orderBy.Desc
		sort.SliceStable(docs, func(i, j int) bool {
			less := compareValues(docs[i].Data[field], docs[j].Data[field]) < 0
			if desc {
				return !less
			}
			return less
		})
	}

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.InsertWithID(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MemoryStore) InsertWithID(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = &memCollection{docs: make(map[string]map[string]any)}
		s.collections[collection] = col
	}
	if _, taken := col.docs[id]; taken {
		return ErrExists
	}

	clone, err := roundTrip(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	col.docs[id] = clone
	col.order = append(col.order, id)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := col.docs[id]; !ok {
		return ErrNotFound
	}

	clone, err := roundTrip(data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	col.docs[id] = clone
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := col.docs[id]; !ok {
		return ErrNotFound
	}
	delete(col.docs, id)
	for i, docID := range col.order {
		if docID == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchesAll(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok {
			return false
		}
		cmp := compareValues(v, f.Value)
		switch f.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGte:
			if cmp < 0 {
				return false
			}
		case OpLt:
			if cmp >= 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareValues orders two loosely-typed values: numerically when both
// sides are numbers, lexicographically otherwise. ISO dates compare
// correctly as strings.
func compareValues(a, b any) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func roundTrip(data map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var clone map[string]any
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, err
	}
	return clone, nil
}

func cloneData(data map[string]any) map[string]any {
	clone := make(map[string]any, len(data))
	for k, v := range data {
		clone[k] = v
	}
	return clone
}
