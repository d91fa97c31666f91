package attendance

import (
	"fmt"
	"strings"
	"time"
)

// MissingDatePolicy decides what happens to records with no usable date
// field. A Normalizer applies exactly one policy, so callers cannot mix
// skip-undated and assume-now semantics within a single aggregation pass.
type MissingDatePolicy int

const (
	// RejectUndated fails normalization with ErrMissingDate.
	RejectUndated MissingDatePolicy = iota
	// AssumeNow falls back to the normalizer's reference date.
	AssumeNow
)

// dateProbe pairs a legacy field name with its extractor. The probe order
// is fixed; adding support for another legacy shape means appending a row,
// not growing a conditional.
type dateProbe struct {
	field   string
	extract func(v any) (string, bool)
}

var dateProbes = []dateProbe{
	{"date", extractDate},
	{"timestamp", extractDate},
	{"createdAt", extractDate},
	{"attendanceDate", extractDate},
}

var statusFields = []string{"status", "attendanceStatus"}

// Normalizer converts raw store documents into canonical Records.
type Normalizer struct {
	policy MissingDatePolicy
	now    func() time.Time
}

func NewNormalizer(policy MissingDatePolicy) *Normalizer {
	return &Normalizer{policy: policy, now: time.Now}
}

// Normalize converts one loosely-typed document into a canonical Record.
// Error outcomes:
//   - ErrMissingDate: no probed field held a usable date (RejectUndated only)
//   - ErrNotMarked: the document carries no status at all
//   - ErrUnknownStatus: a non-empty status that classifies to nothing
func (n *Normalizer) Normalize(id string, data map[string]any) (Record, error) {
	date, ok := n.extractRecordDate(data)
	if !ok {
		return Record{}, fmt.Errorf("document %s: %w", id, ErrMissingDate)
	}

	status, err := classifyStatus(data)
	if err != nil {
		return Record{}, fmt.Errorf("document %s: %w", id, err)
	}

	rec := Record{
		ID:            id,
		EmployeeID:    str(data["employeeId"]),
		Date:          date,
		Status:        status,
		Comment:       str(data["comment"]),
		EmployeeName:  str(data["employeeName"]),
		EmployeeEmpID: str(data["employeeEmpId"]),
		UpdatedBy:     str(data["updatedBy"]),
	}
	if t, ok := extractTime(data["timestamp"]); ok {
		rec.Timestamp = t
	}
	if t, ok := extractTime(data["createdAt"]); ok {
		rec.CreatedAt = t
	}
	return rec, nil
}

func (n *Normalizer) extractRecordDate(data map[string]any) (string, bool) {
	for _, probe := range dateProbes {
		v, ok := data[probe.field]
		if !ok || v == nil {
			continue
		}
		if date, ok := probe.extract(v); ok {
			return date, true
		}
	}
	if n.policy == AssumeNow {
		return n.now().Format("2006-01-02"), true
	}
	return "", false
}

// extractDate turns a raw field value into a "YYYY-MM-DD" date string.
func extractDate(v any) (string, bool) {
	if t, ok := extractTime(v); ok {
		return t.Format("2006-01-02"), true
	}
	return "", false
}

// extractTime handles the shapes legacy documents are known to hold:
// native times, RFC3339 strings, bare date strings, epoch-seconds numbers,
// and {"seconds": N} objects left over from store-native timestamps.
func extractTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if t == "" {
			return time.Time{}, false
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed, true
		}
		return time.Time{}, false
	case float64:
		return time.Unix(int64(t), 0).UTC(), true
	case int64:
		return time.Unix(t, 0).UTC(), true
	case map[string]any:
		if secs, ok := t["seconds"]; ok {
			return extractTime(secs)
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

// classifyStatus probes the known status fields and classifies the first
// non-empty value by substring containment, in fixed priority order.
func classifyStatus(data map[string]any) (Status, error) {
	var raw string
	for _, field := range statusFields {
		if s := str(data[field]); s != "" {
			raw = s
			break
		}
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrNotMarked
	}

	s := foldStatus(raw)
	switch {
	case strings.Contains(s, "present"):
		return StatusPresent, nil
	case strings.Contains(s, "absent"):
		return StatusAbsent, nil
	case strings.Contains(s, "leave"):
		return StatusLeave, nil
	case strings.Contains(s, "wfh"), strings.Contains(s, "workfromhome"):
		return StatusWFH, nil
	case strings.Contains(s, "dayoff"), strings.Contains(s, "offday"):
		return StatusDayOff, nil
	case s == "off":
		return StatusOff, nil
	case strings.Contains(s, "do"):
		return StatusDayOff, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// foldStatus lowercases and strips everything but letters and digits, so
// "Day-Off", "day off" and "DAYOFF" all compare equal.
func foldStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
