package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
	repo "github.com/attendly/attendance-backend-go/internal/repository/docstore"
)

func TestAuditRecentRecords(t *testing.T) {
	store := docstore.NewMemoryStore()
	attendanceRepo := repo.NewAttendanceRepository(store)
	ctx := context.Background()

	_, err := attendanceRepo.Insert(ctx, attendance.Record{
		EmployeeID: "e1",
		Date:       "2026-08-27",
		Status:     attendance.StatusPresent,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	// malformed legacy documents the sweep should tolerate
	require.NoError(t, store.InsertWithID(ctx, "attendance", "legacy-1", map[string]any{
		"employeeId": "e2",
		"status":     "Present",
	}))
	require.NoError(t, store.InsertWithID(ctx, "attendance", "legacy-2", map[string]any{
		"employeeId": "e3",
		"date":       "2026-08-27",
		"status":     "banana",
	}))

	jobs := NewAuditJobs(attendanceRepo, 7, 24*time.Hour)
	require.NoError(t, jobs.AuditRecentRecords(ctx))
}

func TestSchedulerRunOnce(t *testing.T) {
	store := docstore.NewMemoryStore()
	attendanceRepo := repo.NewAttendanceRepository(store)

	s := NewScheduler()
	NewAuditJobs(attendanceRepo, 7, 24*time.Hour).RegisterJobs(s)

	done := make(chan struct{})
	go func() {
		s.RunOnce(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunOnce did not finish")
	}
}
