package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DateProbeOrder(t *testing.T) {
	n := NewNormalizer(RejectUndated)

	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{
			name: "date field wins over everything",
			data: map[string]any{
				"date":      "2026-03-01",
				"timestamp": "2026-04-15T09:30:00Z",
				"createdAt": "2026-05-20T00:00:00Z",
				"status":    "Present",
			},
			want: "2026-03-01",
		},
		{
			name: "timestamp when date is absent",
			data: map[string]any{
				"timestamp": "2026-04-15T09:30:00Z",
				"createdAt": "2026-05-20T00:00:00Z",
				"status":    "Present",
			},
			want: "2026-04-15",
		},
		{
			name: "createdAt when date and timestamp are absent",
			data: map[string]any{
				"createdAt": "2026-05-20T00:00:00Z",
				"status":    "Present",
			},
			want: "2026-05-20",
		},
		{
			name: "attendanceDate is the last resort",
			data: map[string]any{
				"attendanceDate": "2026-06-07",
				"status":         "Present",
			},
			want: "2026-06-07",
		},
		{
			name: "unparseable date falls through to the next probe",
			data: map[string]any{
				"date":      "yesterday",
				"timestamp": "2026-04-15T09:30:00Z",
				"status":    "Present",
			},
			want: "2026-04-15",
		},
		{
			name: "epoch seconds timestamp",
			data: map[string]any{
				"timestamp": float64(1767225600), // 2026-01-01T00:00:00Z
				"status":    "Present",
			},
			want: "2026-01-01",
		},
		{
			name: "seconds object from a store-native timestamp",
			data: map[string]any{
				"timestamp": map[string]any{"seconds": float64(1767225600)},
				"status":    "Present",
			},
			want: "2026-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := n.Normalize("doc-1", tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Date)
		})
	}
}

func TestNormalize_MissingDatePolicies(t *testing.T) {
	data := map[string]any{"status": "Present", "employeeId": "emp-1"}

	t.Run("reject policy fails with ErrMissingDate", func(t *testing.T) {
		n := NewNormalizer(RejectUndated)
		_, err := n.Normalize("doc-1", data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingDate)
	})

	t.Run("assume-now policy uses the reference clock", func(t *testing.T) {
		n := NewNormalizer(AssumeNow)
		n.now = func() time.Time {
			return time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
		}
		rec, err := n.Normalize("doc-1", data)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-28", rec.Date)
	})
}

func TestNormalize_StatusClassification(t *testing.T) {
	n := NewNormalizer(RejectUndated)

	tests := []struct {
		raw  string
		want Status
	}{
		{"Present", StatusPresent},
		{"present", StatusPresent},
		{"  PRESENT  ", StatusPresent},
		{"was present today", StatusPresent},
		{"Absent", StatusAbsent},
		{"marked-absent", StatusAbsent},
		{"Leave", StatusLeave},
		{"on leave", StatusLeave},
		{"sick leave", StatusLeave},
		{"WFH", StatusWFH},
		{"work from home", StatusWFH},
		{"Day Off", StatusDayOff},
		{"day-off", StatusDayOff},
		{"DAYOFF", StatusDayOff},
		{"off day", StatusDayOff},
		{"OFF", StatusOff},
		{"off", StatusOff},
		{"DO", StatusDayOff},
		{"do", StatusDayOff},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rec, err := n.Normalize("doc-1", map[string]any{
				"date":   "2026-02-10",
				"status": tt.raw,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Status)
		})
	}
}

func TestNormalize_StatusFieldFallback(t *testing.T) {
	n := NewNormalizer(RejectUndated)

	rec, err := n.Normalize("doc-1", map[string]any{
		"date":             "2026-02-10",
		"attendanceStatus": "Leave",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusLeave, rec.Status)

	// status takes priority when both are set
	rec, err = n.Normalize("doc-2", map[string]any{
		"date":             "2026-02-10",
		"status":           "Present",
		"attendanceStatus": "Leave",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, rec.Status)
}

func TestNormalize_StatusErrors(t *testing.T) {
	n := NewNormalizer(RejectUndated)

	t.Run("empty status means not marked", func(t *testing.T) {
		_, err := n.Normalize("doc-1", map[string]any{"date": "2026-02-10"})
		assert.ErrorIs(t, err, ErrNotMarked)

		_, err = n.Normalize("doc-2", map[string]any{
			"date":   "2026-02-10",
			"status": "   ",
		})
		assert.ErrorIs(t, err, ErrNotMarked)
	})

	t.Run("unclassifiable status is unknown, not not-marked", func(t *testing.T) {
		_, err := n.Normalize("doc-1", map[string]any{
			"date":   "2026-02-10",
			"status": "banana",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownStatus)
		assert.False(t, errors.Is(err, ErrNotMarked))
	})
}

func TestNormalize_CarriesSnapshotFields(t *testing.T) {
	n := NewNormalizer(RejectUndated)

	rec, err := n.Normalize("emp-1|2026-02-10", map[string]any{
		"employeeId":    "emp-1",
		"employeeName":  "Ayesha Khan",
		"employeeEmpId": "E-104",
		"date":          "2026-02-10",
		"status":        "Leave",
		"comment":       "annual leave",
		"updatedBy":     "admin@attendly.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1|2026-02-10", rec.ID)
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Equal(t, "Ayesha Khan", rec.EmployeeName)
	assert.Equal(t, "E-104", rec.EmployeeEmpID)
	assert.Equal(t, "annual leave", rec.Comment)
	assert.Equal(t, "admin@attendly.io", rec.UpdatedBy)
}
