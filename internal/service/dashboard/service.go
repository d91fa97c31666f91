package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
)

const recentActivityLimit = 10

type DashboardServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	normalizer     *attendance.Normalizer
	now            func() time.Time
}

func NewDashboardService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
) dashboard.Service {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		normalizer:     attendance.NewNormalizer(attendance.RejectUndated),
		now:            time.Now,
	}
}

// GetDashboard implements dashboard.Service. The three reads are
// independent, so they run concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	today := s.now().UTC().Format("2006-01-02")

	var (
		todayRes  attendance.FetchResult
		recentRes attendance.FetchResult
		employees []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayRes, err = s.attendanceRepo.FetchByDate(gctx, today)
		if err != nil {
			return fmt.Errorf("failed to fetch today's records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recentRes, err = s.attendanceRepo.FetchRecent(gctx, recentActivityLimit)
		if err != nil {
			return fmt.Errorf("failed to fetch recent activity: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gctx, employee.StatusActive)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	var todayRecords []attendance.Record
	for _, doc := range todayRes.Docs {
		rec, err := s.normalizer.Normalize(doc.ID, doc.Data)
		if err != nil {
			continue
		}
		todayRecords = append(todayRecords, rec)
	}

	w, err := attendance.DayWindow(today)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to build day window: %w", err)
	}
	tally := attendance.CountByStatus(todayRecords, w)

	unmarked := len(employees) - tally.Total
	if unmarked < 0 {
		unmarked = 0
	}

	return dashboard.DashboardResponse{
		Today: dashboard.TodayStats{
			Date:         today,
			Employees:    len(employees),
			Marked:       tally.Total,
			Unmarked:     unmarked,
			Counts:       tally.ByStatus,
			Unrecognized: tally.Unrecognized,
		},
		RecentActivity: s.mapActivity(recentRes.Docs, employees),
	}, nil
}

// mapActivity joins each record against the current employee list so the
// feed shows up-to-date names instead of the write-time snapshot.
func (s *DashboardServiceImpl) mapActivity(docs []attendance.RawDoc, employees []employee.Employee) []dashboard.ActivityEntry {
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	entries := make([]dashboard.ActivityEntry, 0, len(docs))
	for _, doc := range docs {
		rec, err := s.normalizer.Normalize(doc.ID, doc.Data)
		if err != nil {
			continue
		}
		name := rec.EmployeeName
		if current, ok := names[rec.EmployeeID]; ok {
			name = current
		}
		entry := dashboard.ActivityEntry{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: name,
			Date:         rec.Date,
			Status:       string(rec.Status),
			UpdatedBy:    rec.UpdatedBy,
		}
		if !rec.Timestamp.IsZero() {
			entry.Timestamp = rec.Timestamp.UTC().Format(time.RFC3339)
		}
		entries = append(entries, entry)
	}
	return entries
}
