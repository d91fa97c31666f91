package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// auditSweepSize caps how many documents one audit run inspects.
const auditSweepSize = 1000

// AuditJobs owns the periodic normalization audit: it sweeps recent
// attendance documents and logs the ones the normalizer would reject, so
// malformed legacy data surfaces before someone pulls a report.
//
// The sweep reads by recency rather than by date range: a date-range query
// can never return a document whose date field is the thing that's broken.
type AuditJobs struct {
	attendanceRepo attendance.Repository
	normalizer     *attendance.Normalizer
	lookbackDays   int
	interval       time.Duration
}

func NewAuditJobs(attendanceRepo attendance.Repository, lookbackDays int, interval time.Duration) *AuditJobs {
	return &AuditJobs{
		attendanceRepo: attendanceRepo,
		normalizer:     attendance.NewNormalizer(attendance.RejectUndated),
		lookbackDays:   lookbackDays,
		interval:       interval,
	}
}

func (j *AuditJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("normalization_audit", j.interval, j.AuditRecentRecords)
}

// AuditRecentRecords normalizes recently written records and logs a
// summary of the failures by kind. Documents written before the lookback
// cutoff are skipped; documents with no readable write time are audited
// anyway, since being unreadable is what the audit is for.
func (j *AuditJobs) AuditRecentRecords(ctx context.Context) error {
	res, err := j.attendanceRepo.FetchRecent(ctx, auditSweepSize)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -j.lookbackDays)

	var audited, undated, unmarked, unknown int
	for _, doc := range res.Docs {
		if ts, ok := doc.Data["timestamp"].(string); ok {
			if written, err := time.Parse(time.RFC3339, ts); err == nil && written.Before(cutoff) {
				continue
			}
		}
		audited++

		_, err := j.normalizer.Normalize(doc.ID, doc.Data)
		switch {
		case err == nil:
			continue
		case errors.Is(err, attendance.ErrMissingDate):
			undated++
			slog.Warn("Cron: record has no usable date", "id", doc.ID)
		case errors.Is(err, attendance.ErrNotMarked):
			unmarked++
		case errors.Is(err, attendance.ErrUnknownStatus):
			unknown++
			slog.Warn("Cron: unrecognized status", "id", doc.ID, "status", doc.Data["status"])
		}
	}

	slog.Info("Cron: normalization audit complete",
		"audited", audited,
		"undated", undated,
		"unmarked", unmarked,
		"unknown_status", unknown,
	)
	return nil
}
