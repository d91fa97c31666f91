package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
)

const attendanceCollection = "attendance"

type attendanceRepository struct {
	store docstore.Store
}

func NewAttendanceRepository(store docstore.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.RawDoc, error) {
	filters := []docstore.Filter{
		{Field: "employeeId", Op: docstore.OpEq, Value: employeeID},
		{Field: "date", Op: docstore.OpEq, Value: date},
	}
	docs, err := r.store.Query(ctx, attendanceCollection, filters, nil, 1)
	if err != nil {
		return attendance.RawDoc{}, fmt.Errorf("find attendance: %w", err)
	}
	if len(docs) == 0 {
		return attendance.RawDoc{}, attendance.ErrRecordNotFound
	}
	return attendance.RawDoc{ID: docs[0].ID, Data: docs[0].Data}, nil
}

func (r *attendanceRepository) Insert(ctx context.Context, rec attendance.Record) (string, error) {
	id := attendance.CompositeKey(rec.EmployeeID, rec.Date)
	err := r.store.InsertWithID(ctx, attendanceCollection, id, encodeRecord(rec))
	if err != nil {
		if errors.Is(err, docstore.ErrExists) {
			return "", attendance.ErrDuplicateRecord
		}
		return "", fmt.Errorf("insert attendance: %w", err)
	}
	return id, nil
}

func (r *attendanceRepository) Update(ctx context.Context, id string, rec attendance.Record) error {
	if err := r.store.Update(ctx, attendanceCollection, id, encodeRecord(rec)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FetchByDate(ctx context.Context, date string) (attendance.FetchResult, error) {
	filters := []docstore.Filter{
		{Field: "date", Op: docstore.OpEq, Value: date},
	}
	docs, err := r.store.Query(ctx, attendanceCollection, filters, nil, 0)
	if err != nil {
		return attendance.FetchResult{}, fmt.Errorf("fetch attendance by date: %w", err)
	}
	return rawResult(docs, attendance.SourceStore), nil
}

func (r *attendanceRepository) FetchByDateRange(ctx context.Context, w attendance.Window) (attendance.FetchResult, error) {
	filters := []docstore.Filter{
		{Field: "date", Op: docstore.OpGte, Value: w.Start},
		{Field: "date", Op: docstore.OpLt, Value: w.End},
	}
	docs, err := r.store.Query(ctx, attendanceCollection, filters, nil, 0)
	if err != nil {
		return attendance.FetchResult{}, fmt.Errorf("fetch attendance range: %w", err)
	}
	return rawResult(docs, attendance.SourceStore), nil
}

// FetchByEmployeeAndRange ranges on date in the store, then narrows to one
// employee in memory. The store only ranges on a single field per query,
// so the employee filter cannot be pushed down alongside the date range.
func (r *attendanceRepository) FetchByEmployeeAndRange(ctx context.Context, employeeID string, w attendance.Window) (attendance.FetchResult, error) {
	res, err := r.FetchByDateRange(ctx, w)
	if err != nil {
		return attendance.FetchResult{}, err
	}
	var filtered []attendance.RawDoc
	for _, d := range res.Docs {
		if s, ok := d.Data["employeeId"].(string); ok && s == employeeID {
			filtered = append(filtered, d)
		}
	}
	return attendance.FetchResult{Docs: filtered, Source: attendance.SourceMemory}, nil
}

func (r *attendanceRepository) FetchRecent(ctx context.Context, limit int) (attendance.FetchResult, error) {
	orderBy := &docstore.OrderBy{Field: "timestamp", Desc: true}
	docs, err := r.store.Query(ctx, attendanceCollection, nil, orderBy, limit)
	if err != nil {
		return attendance.FetchResult{}, fmt.Errorf("fetch recent attendance: %w", err)
	}
	return rawResult(docs, attendance.SourceStore), nil
}

func (r *attendanceRepository) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	filters := []docstore.Filter{
		{Field: "employeeId", Op: docstore.OpEq, Value: employeeID},
	}
	docs, err := r.store.Query(ctx, attendanceCollection, filters, nil, 0)
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return len(docs), nil
}

func rawResult(docs []docstore.Document, source attendance.Source) attendance.FetchResult {
	raw := make([]attendance.RawDoc, 0, len(docs))
	for _, d := range docs {
		raw = append(raw, attendance.RawDoc{ID: d.ID, Data: d.Data})
	}
	return attendance.FetchResult{Docs: raw, Source: source}
}

// encodeRecord flattens a Record into the stored document shape. Times are
// stored as RFC3339 strings so every backend round-trips them identically.
func encodeRecord(rec attendance.Record) map[string]any {
	data := map[string]any{
		"employeeId":    rec.EmployeeID,
		"date":          rec.Date,
		"status":        string(rec.Status),
		"comment":       rec.Comment,
		"employeeName":  rec.EmployeeName,
		"employeeEmpId": rec.EmployeeEmpID,
		"updatedBy":     rec.UpdatedBy,
	}
	if !rec.Timestamp.IsZero() {
		data["timestamp"] = rec.Timestamp.UTC().Format(time.RFC3339)
	}
	if !rec.CreatedAt.IsZero() {
		data["createdAt"] = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	return data
}
