package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// errMalformed marks content that is not a list of task objects.
// Load treats it like a JSON syntax error and backs the file up.
var errMalformed = errors.New("malformed task file")

// offsetLayouts are accepted for created_at values with a basic (+hhmm) zone offset.
// Fractional seconds are accepted after the seconds field.
var offsetLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05-0700",
	"2006-01-02T15:04:05Z0700",
}

// naiveLayouts are accepted for created_at values without a zone offset.
// They are interpreted in local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// record is the on-disk representation of a task.
// Fields are ordered to match the file layout.
type record struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Status           string  `json:"status"`
	Priority         string  `json:"priority"`
	CreatedAt        string  `json:"created_at"`
	DueDate          *string `json:"due_date"`
	DurationSeconds  int     `json:"duration_seconds"`
	RemainingSeconds int     `json:"remaining_seconds"`
}

// toRecord converts a task for writing.
func toRecord(t *domain.Task) record {
	var due *string
	if t.DueDate != "" {
		d := t.DueDate
		due = &d
	}
	return record{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           string(t.Status),
		Priority:         string(t.Priority),
		CreatedAt:        t.CreatedAt.Format(time.RFC3339Nano),
		DueDate:          due,
		DurationSeconds:  t.DurationSeconds,
		RemainingSeconds: t.RemainingSeconds,
	}
}

// decodeTasks parses the file content into tasks.
// Structural problems return errMalformed; integer values that parse as JSON
// but cannot be coerced return *domain.TypeCoercionError. Recoverable problems
// are reported as warnings.
func decodeTasks(content []byte, now time.Time) ([]*domain.Task, []string, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(content, &raws); err != nil {
		return nil, nil, err
	}
	if raws == nil {
		// Top-level null.
		return nil, nil, errMalformed
	}

	var warnings []string
	tasks := make([]*domain.Task, 0, len(raws))
	for i, raw := range raws {
		task, w, err := decodeTask(i, raw, now)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, w...)
		tasks = append(tasks, task)
	}
	return tasks, warnings, nil
}

// renumberDuplicates gives every task whose id is already taken a fresh
// id above the current maximum, keeping the first holder of each id.
// Returns one warning per renumbered task.
func renumberDuplicates(tasks []*domain.Task) []string {
	var warnings []string
	next := domain.NextID(tasks)
	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		if !seen[t.ID] {
			seen[t.ID] = true
			continue
		}
		warnings = append(warnings, fmt.Sprintf("task record %d: duplicate id %d, renumbered to %d", i, t.ID, next))
		t.ID = next
		seen[next] = true
		next++
	}
	return warnings
}

// decodeTask decodes one record field by field.
//
// Defaults for absent keys: description "", status pending, priority low,
// due_date none, duration_seconds 0, remaining_seconds = duration_seconds,
// created_at = now. A created_at that is not a recognized timestamp also
// becomes now, with a warning. Unknown keys are ignored.
func decodeTask(index int, raw json.RawMessage, now time.Time) (*domain.Task, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, nil, errMalformed
	}

	d := fieldDecoder{index: index, fields: fields}
	task := &domain.Task{
		ID:          d.integer("id", 0),
		Title:       d.str("title", ""),
		Description: d.str("description", ""),
		Status:      domain.Status(d.str("status", string(domain.StatusPending))),
		Priority:    domain.Priority(d.str("priority", string(domain.PriorityLow))),
		DueDate:     d.str("due_date", ""),
	}
	task.DurationSeconds = max(d.integer("duration_seconds", 0), 0)
	task.RemainingSeconds = max(d.integer("remaining_seconds", task.DurationSeconds), 0)
	task.CreatedAt = d.timestamp("created_at", now)

	if d.err != nil {
		return nil, nil, d.err
	}
	return task, d.warnings, nil
}

// fieldDecoder reads typed values out of a decoded JSON object and keeps
// the first error it encounters.
type fieldDecoder struct {
	err      error
	fields   map[string]json.RawMessage
	warnings []string
	index    int
}

// lookup returns the raw value for key; null counts as present.
func (d *fieldDecoder) lookup(key string) (json.RawMessage, bool) {
	if d.err != nil {
		return nil, false
	}
	raw, ok := d.fields[key]
	return raw, ok
}

// str reads a string field. Absent or null yields def; any other
// non-string value makes the record malformed.
func (d *fieldDecoder) str(key, def string) string {
	raw, ok := d.lookup(key)
	if !ok || isNull(raw) {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.err = errMalformed
		return def
	}
	return s
}

// integer reads an integer field, coercing numbers, numeric strings and booleans.
// Absent yields def; null and anything else is a coercion error.
func (d *fieldDecoder) integer(key string, def int) int {
	raw, ok := d.lookup(key)
	if !ok {
		return def
	}
	n, ok := coerceInt(raw)
	if !ok {
		d.err = &domain.TypeCoercionError{Index: d.index, Field: key, Value: string(raw)}
		return def
	}
	return n
}

// timestamp reads a timestamp field. Absent or null yields def silently;
// any value that is not a recognized timestamp string yields def with a warning.
func (d *fieldDecoder) timestamp(key string, def time.Time) time.Time {
	raw, ok := d.lookup(key)
	if !ok || isNull(raw) {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, err := parseTimestamp(s); err == nil {
			return t
		}
	}
	d.warnings = append(d.warnings,
		fmt.Sprintf("task record %d: unrecognized %s value %s, using load time", d.index, key, string(raw)))
	return def
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// coerceInt converts a JSON value to an int the way a lenient integer
// conversion would: numbers truncate toward zero, strings must hold a
// base-10 integer, booleans map to 0 and 1.
func coerceInt(raw json.RawMessage) (int, bool) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	switch x := v.(type) {
	case json.Number:
		if n, err := strconv.Atoi(x.String()); err == nil {
			return n, true
		}
		f, err := x.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int(f), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// parseTimestamp accepts RFC 3339, basic-offset and zone-less ISO-8601
// timestamps, including date-only values.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	var lastErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
