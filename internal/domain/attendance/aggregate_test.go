package attendance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(employeeID, date string, status Status) Record {
	return Record{
		ID:         CompositeKey(employeeID, date),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
}

func TestWindow_HalfOpen(t *testing.T) {
	w := Window{Start: "2026-02-01", End: "2026-03-01"}

	assert.True(t, w.Contains("2026-02-01"))
	assert.True(t, w.Contains("2026-02-28"))
	assert.False(t, w.Contains("2026-03-01"))
	assert.False(t, w.Contains("2026-01-31"))
}

func TestMonthWindow(t *testing.T) {
	w, err := MonthWindow("2026-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", w.Start)
	assert.Equal(t, "2026-03-01", w.End)

	w, err = MonthWindow("2026-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", w.Start)
	assert.Equal(t, "2027-01-01", w.End)

	_, err = MonthWindow("2026-13")
	assert.Error(t, err)
}

func TestDayWindow(t *testing.T) {
	w, err := DayWindow("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", w.Start)
	assert.Equal(t, "2026-03-01", w.End)
}

func TestCountByStatus(t *testing.T) {
	w := Window{Start: "2026-02-01", End: "2026-03-01"}
	records := []Record{
		rec("e1", "2026-02-03", StatusPresent),
		rec("e2", "2026-02-03", StatusPresent),
		rec("e3", "2026-02-03", StatusLeave),
		rec("e1", "2026-02-04", StatusWFH),
		rec("e1", "2026-03-01", StatusPresent), // end bound excluded
		rec("e2", "2026-01-31", StatusAbsent),  // before start
		rec("e4", "2026-02-05", Status("Maybe")),
	}

	tally := CountByStatus(records, w)

	assert.Equal(t, 5, tally.Total)
	assert.Equal(t, 2, tally.ByStatus[StatusPresent])
	assert.Equal(t, 1, tally.ByStatus[StatusLeave])
	assert.Equal(t, 1, tally.ByStatus[StatusWFH])
	assert.Equal(t, 1, tally.Unrecognized)

	// every known status has a key, even at zero
	for _, s := range Statuses {
		_, ok := tally.ByStatus[s]
		assert.True(t, ok, "missing key for %s", s)
	}
	assert.Equal(t, 0, tally.ByStatus[StatusAbsent])
	assert.Equal(t, 0, tally.ByStatus[StatusOff])
	assert.Equal(t, 0, tally.ByStatus[StatusDayOff])
}

func TestCountByStatus_OrderIndependent(t *testing.T) {
	w := Window{Start: "2026-02-01", End: "2026-03-01"}
	records := []Record{
		rec("e1", "2026-02-03", StatusPresent),
		rec("e2", "2026-02-05", StatusAbsent),
		rec("e3", "2026-02-07", StatusLeave),
		rec("e4", "2026-02-09", StatusWFH),
		rec("e5", "2026-02-11", StatusOff),
		rec("e6", "2026-02-13", StatusDayOff),
	}
	want := CountByStatus(records, w)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, CountByStatus(shuffled, w))
	}
}

func TestGroupByDate(t *testing.T) {
	records := []Record{
		rec("e1", "2026-02-03", StatusPresent),
		rec("e2", "2026-02-04", StatusLeave),
		rec("e3", "2026-02-03", StatusPresent),
		rec("e4", "2026-02-03", StatusAbsent),
	}

	groups := GroupByDate(records)
	require.Len(t, groups, 2)

	// dates appear in first-seen order
	assert.Equal(t, "2026-02-03", groups[0].Date)
	assert.Equal(t, "2026-02-04", groups[1].Date)

	first := groups[0]
	assert.Len(t, first.Records, 3)
	assert.Equal(t, []Status{StatusPresent, StatusAbsent}, first.Statuses)
	assert.Equal(t, 2, first.Counts[StatusPresent])
	assert.Equal(t, 1, first.Counts[StatusAbsent])

	second := groups[1]
	assert.Len(t, second.Records, 1)
	assert.Equal(t, []Status{StatusLeave}, second.Statuses)
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
}

func TestSummarizeForEmployee(t *testing.T) {
	w := Window{Start: "2026-02-01", End: "2026-03-01"}
	records := []Record{
		rec("e1", "2026-02-20", StatusPresent),
		rec("e2", "2026-02-03", StatusAbsent),
		rec("e1", "2026-02-03", StatusLeave),
		rec("e1", "2026-03-05", StatusPresent), // outside window
		rec("e1", "2026-02-10", StatusWFH),
	}

	sum := SummarizeForEmployee(records, "e1", w)

	require.Len(t, sum.Records, 3)
	assert.Equal(t, "2026-02-03", sum.Records[0].Date)
	assert.Equal(t, "2026-02-10", sum.Records[1].Date)
	assert.Equal(t, "2026-02-20", sum.Records[2].Date)
	assert.Equal(t, 1, sum.Tally.ByStatus[StatusLeave])
	assert.Equal(t, 1, sum.Tally.ByStatus[StatusWFH])
	assert.Equal(t, 1, sum.Tally.ByStatus[StatusPresent])
	assert.Equal(t, 3, sum.Tally.Total)
}

func TestSummarizeForEmployee_OrderIndependent(t *testing.T) {
	w := Window{Start: "2026-02-01", End: "2026-03-01"}
	records := []Record{
		rec("e1", "2026-02-20", StatusPresent),
		rec("e1", "2026-02-03", StatusLeave),
		rec("e1", "2026-02-10", StatusWFH),
		rec("e2", "2026-02-10", StatusAbsent),
	}
	want := SummarizeForEmployee(records, "e1", w)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, SummarizeForEmployee(shuffled, "e1", w))
	}
}
