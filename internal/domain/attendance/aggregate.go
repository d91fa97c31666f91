package attendance

import (
	"sort"
	"time"
)

// Window is a half-open date range [Start, End) over "YYYY-MM-DD" strings.
// Lexicographic comparison is correct for this format, so no time parsing
// is needed to test membership.
type Window struct {
	Start string
	End   string
}

func (w Window) Contains(date string) bool {
	return date >= w.Start && date < w.End
}

// Tally is the result of counting records by status. ByStatus always holds
// an entry for every known status, zero or not, so report rendering never
// has to distinguish "absent key" from "zero count".
type Tally struct {
	ByStatus     map[Status]int
	Unrecognized int
	Total        int
}

func newTally() Tally {
	by := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		by[s] = 0
	}
	return Tally{ByStatus: by}
}

// CountByStatus tallies the records that fall inside the window. Records
// outside the window are ignored; records whose status is not one of the
// known values count as Unrecognized. The result does not depend on input
// order.
func CountByStatus(records []Record, w Window) Tally {
	t := newTally()
	for _, r := range records {
		if !w.Contains(r.Date) {
			continue
		}
		t.Total++
		if r.Status.IsValid() {
			t.ByStatus[r.Status]++
		} else {
			t.Unrecognized++
		}
	}
	return t
}

// DateGroup is one date's worth of records with its per-status breakdown.
// Statuses lists the distinct statuses seen that day in first-seen order.
type DateGroup struct {
	Date     string
	Records  []Record
	Statuses []Status
	Counts   map[Status]int
}

// GroupByDate buckets records by date, preserving the input's first-seen
// order of dates. Calendar views rely on Statuses and Counts to badge a
// day without re-scanning its records.
func GroupByDate(records []Record) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			i = len(groups)
			index[r.Date] = i
			groups = append(groups, DateGroup{
				Date:   r.Date,
				Counts: make(map[Status]int),
			})
		}
		g := &groups[i]
		g.Records = append(g.Records, r)
		if _, seen := g.Counts[r.Status]; !seen {
			g.Statuses = append(g.Statuses, r.Status)
		}
		g.Counts[r.Status]++
	}
	return groups
}

// EmployeeSummary is one employee's records and tally for a window,
// with records in ascending date order.
type EmployeeSummary struct {
	EmployeeID string
	Records    []Record
	Tally      Tally
}

// SummarizeForEmployee filters records down to one employee and one
// window, sorts them by date ascending, and tallies them. Input order
// never affects the output.
func SummarizeForEmployee(records []Record, employeeID string, w Window) EmployeeSummary {
	sum := EmployeeSummary{EmployeeID: employeeID}
	for _, r := range records {
		if r.EmployeeID != employeeID || !w.Contains(r.Date) {
			continue
		}
		sum.Records = append(sum.Records, r)
	}
	sort.SliceStable(sum.Records, func(i, j int) bool {
		return sum.Records[i].Date < sum.Records[j].Date
	})
	sum.Tally = CountByStatus(sum.Records, w)
	return sum
}

// MonthWindow returns the half-open window covering one "YYYY-MM" month.
// The end bound is the first day of the next month.
func MonthWindow(month string) (Window, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Window{}, err
	}
	end := start.AddDate(0, 1, 0)
	return Window{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}, nil
}

// DayWindow returns the half-open window covering a single date.
func DayWindow(date string) (Window, error) {
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Start: start.Format("2006-01-02"),
		End:   start.AddDate(0, 0, 1).Format("2006-01-02"),
	}, nil
}
