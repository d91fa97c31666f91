package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

// markConcurrency caps the parallelism of batch marking.
const markConcurrency = 8

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// Mark implements attendance.Service. Marking is an upsert keyed on
// (employee, date): the first write creates the record, later writes
// replace its status and comment and refresh the employee snapshot.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.MarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResponse{}, err
	}

	nowUTC := s.now().UTC()
	if req.Date > nowUTC.Format("2006-01-02") {
		return attendance.MarkResponse{}, attendance.ErrFutureDate
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.MarkResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.MarkResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	status := attendance.Status(req.Status)
	rec := attendance.Record{
		EmployeeID:    emp.ID,
		Date:          req.Date,
		Status:        status,
		EmployeeName:  emp.Name,
		EmployeeEmpID: emp.EmpID,
		UpdatedBy:     userFromContext(ctx),
		Timestamp:     nowUTC,
	}
	// comments only make sense on Leave and DO; marking any other status
	// clears whatever comment the record held
	if status.CommentApplies() {
		rec.Comment = req.Comment
	}

	id, created, err := s.upsert(ctx, rec)
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	return attendance.MarkResponse{
		ID:            id,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		EmployeeEmpID: rec.EmployeeEmpID,
		Date:          rec.Date,
		Status:        string(rec.Status),
		Comment:       rec.Comment,
		UpdatedBy:     rec.UpdatedBy,
		Created:       created,
	}, nil
}

// upsert finds-or-inserts under the composite key, then falls back to an
// update when a concurrent insert won the race. The loser never fails;
// it just becomes the second writer.
func (s *AttendanceServiceImpl) upsert(ctx context.Context, rec attendance.Record) (string, bool, error) {
	existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return "", false, fmt.Errorf("failed to look up existing record: %w", err)
	}

	if errors.Is(err, attendance.ErrRecordNotFound) {
		rec.CreatedAt = rec.Timestamp
		id, insErr := s.attendanceRepo.Insert(ctx, rec)
		if insErr == nil {
			return id, true, nil
		}
		if !errors.Is(insErr, attendance.ErrDuplicateRecord) {
			return "", false, fmt.Errorf("failed to insert record: %w", insErr)
		}
		// lost the race: the record exists now, fetch it and update
		existing, err = s.attendanceRepo.FindByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
		if err != nil {
			return "", false, fmt.Errorf("failed to re-fetch record after insert conflict: %w", err)
		}
	}

	rec.CreatedAt = existingCreatedAt(existing)
	if err := s.attendanceRepo.Update(ctx, existing.ID, rec); err != nil {
		return "", false, fmt.Errorf("failed to update record: %w", err)
	}
	return existing.ID, false, nil
}

// MarkAll implements attendance.Service. Entries are marked concurrently
// and independently; one failure never rolls back the others.
func (s *AttendanceServiceImpl) MarkAll(ctx context.Context, req attendance.BatchMarkRequest) (attendance.BatchMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchMarkResponse{}, err
	}

	results := make([]attendance.BatchMarkResult, len(req.Entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(markConcurrency)
	for i, entry := range req.Entries {
		results[i].EmployeeID = entry.EmployeeID
		if entry.Status == "" {
			// unmarked rows in the sheet are simply not recorded
			continue
		}
		g.Go(func() error {
			resp, err := s.Mark(gctx, attendance.MarkRequest{
				EmployeeID: entry.EmployeeID,
				Date:       req.Date,
				Status:     entry.Status,
				Comment:    entry.Comment,
			})
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Status = resp.Status
			return nil
		})
	}
	// goroutines report per-entry failures through results, never here
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	return attendance.BatchMarkResponse{
		Date:    req.Date,
		Results: results,
		Failed:  failed,
	}, nil
}

// userFromContext pulls the acting user's email out of the JWT claims.
// Unauthenticated contexts (cron, tests) just leave the stamp empty.
func userFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	if email, ok := claims["email"].(string); ok {
		return email
	}
	return ""
}

func existingCreatedAt(doc attendance.RawDoc) time.Time {
	if s, ok := doc.Data["createdAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
