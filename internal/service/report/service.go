package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
	normalizer     *attendance.Normalizer
	logger         *slog.Logger
}

func NewReportService(attendanceRepo attendance.Repository, logger *slog.Logger) report.Service {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		normalizer:     attendance.NewNormalizer(attendance.RejectUndated),
		logger:         logger,
	}
}

// DailyReport implements report.Service.
func (s *ReportServiceImpl) DailyReport(ctx context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	res, err := s.attendanceRepo.FetchByDate(ctx, req.Date)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to fetch records: %w", err)
	}

	records, skipped := s.normalize(res.Docs)
	if req.Status != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Status == attendance.Status(req.Status) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].EmployeeName) < strings.ToLower(records[j].EmployeeName)
	})

	w, err := attendance.DayWindow(req.Date)
	if err != nil {
		return report.DailyReportResponse{}, report.ErrInvalidDate
	}
	tally := attendance.CountByStatus(records, w)

	return report.DailyReportResponse{
		Date:    req.Date,
		Rows:    mapRecordsToRows(records),
		Counts:  tally.ByStatus,
		Total:   tally.Total,
		Skipped: skipped,
		Source:  string(res.Source),
	}, nil
}

// DailyReportCSV implements report.Service. Returns the rendered file
// plus a suggested filename.
func (s *ReportServiceImpl) DailyReportCSV(ctx context.Context, req report.DailyReportRequest) ([]byte, string, error) {
	resp, err := s.DailyReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := renderCSV(resp.Rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance-daily-%s.csv", req.Date)
	return data, filename, nil
}

// MonthlyCalendar implements report.Service.
func (s *ReportServiceImpl) MonthlyCalendar(ctx context.Context, req report.MonthlyReportRequest) (report.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return report.CalendarResponse{}, err
	}

	w, err := attendance.MonthWindow(req.Month)
	if err != nil {
		return report.CalendarResponse{}, report.ErrInvalidMonth
	}

	var res attendance.FetchResult
	if req.EmployeeID != "" {
		res, err = s.attendanceRepo.FetchByEmployeeAndRange(ctx, req.EmployeeID, w)
	} else {
		res, err = s.attendanceRepo.FetchByDateRange(ctx, w)
	}
	if err != nil {
		return report.CalendarResponse{}, fmt.Errorf("failed to fetch records: %w", err)
	}

	records, _ := s.normalize(res.Docs)
	groups := attendance.GroupByDate(records)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})

	days := make([]report.CalendarDay, 0, len(groups))
	for _, g := range groups {
		days = append(days, report.CalendarDay{
			Date:     g.Date,
			Statuses: g.Statuses,
			Counts:   g.Counts,
			Total:    len(g.Records),
		})
	}

	return report.CalendarResponse{Month: req.Month, Days: days, Source: string(res.Source)}, nil
}

// EmployeeReport implements report.Service.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, req report.EmployeeReportRequest) (report.EmployeeReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeReportResponse{}, err
	}

	w, err := attendance.MonthWindow(req.Month)
	if err != nil {
		return report.EmployeeReportResponse{}, report.ErrInvalidMonth
	}

	res, err := s.attendanceRepo.FetchByEmployeeAndRange(ctx, req.EmployeeID, w)
	if err != nil {
		return report.EmployeeReportResponse{}, fmt.Errorf("failed to fetch records: %w", err)
	}

	records, _ := s.normalize(res.Docs)
	sum := attendance.SummarizeForEmployee(records, req.EmployeeID, w)

	resp := report.EmployeeReportResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Rows:       mapRecordsToRows(sum.Records),
		Counts:     sum.Tally.ByStatus,
		Total:      sum.Tally.Total,
		Source:     string(res.Source),
	}
	if len(sum.Records) > 0 {
		resp.EmployeeName = sum.Records[0].EmployeeName
	}
	return resp, nil
}

// EmployeeReportCSV implements report.Service. Returns the rendered file
// plus a suggested filename.
func (s *ReportServiceImpl) EmployeeReportCSV(ctx context.Context, req report.EmployeeReportRequest) ([]byte, string, error) {
	resp, err := s.EmployeeReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := renderCSV(resp.Rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("attendance-%s-%s.csv", req.EmployeeID, req.Month)
	return data, filename, nil
}

func renderCSV(rows []report.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"Date", "Employee", "Emp ID", "Status", "Comment", "Updated By"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.Date,
			row.EmployeeName,
			row.EmployeeEmpID,
			row.Status,
			row.Comment,
			row.UpdatedBy,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}
	return buf.Bytes(), nil
}

// normalize runs every raw document through the normalizer, dropping the
// ones that fail. Failures are logged, not surfaced: a report over legacy
// data should render what it can.
func (s *ReportServiceImpl) normalize(docs []attendance.RawDoc) ([]attendance.Record, int) {
	records := make([]attendance.Record, 0, len(docs))
	skipped := 0
	for _, doc := range docs {
		rec, err := s.normalizer.Normalize(doc.ID, doc.Data)
		if err != nil {
			skipped++
			if !errors.Is(err, attendance.ErrNotMarked) {
				s.logger.Warn("skipping record", slog.String("id", doc.ID), slog.Any("error", err))
			}
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

func mapRecordsToRows(records []attendance.Record) []report.ReportRow {
	rows := make([]report.ReportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.ReportRow{
			EmployeeID:    rec.EmployeeID,
			EmployeeName:  rec.EmployeeName,
			EmployeeEmpID: rec.EmployeeEmpID,
			Date:          rec.Date,
			Status:        string(rec.Status),
			Comment:       rec.Comment,
			UpdatedBy:     rec.UpdatedBy,
		})
	}
	return rows
}
