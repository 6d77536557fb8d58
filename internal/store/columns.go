package store

import (
	"database/sql/driver"
	"math"
	"strconv"
	"strings"
	"time"
)

// Code is a persisted activity type code. SQLite lets the type column hold
// any value, so scanning never fails: a value that is not an integer leaves
// Valid false and the mapper drops the record.
type Code struct {
	Int64 int64
	Valid bool
}

// Scan implements sql.Scanner.
func (c *Code) Scan(src any) error {
	*c = Code{}
	switch v := src.(type) {
	case int64:
		c.Int64, c.Valid = v, true
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			c.Int64, c.Valid = int64(v), true
		}
	case []byte:
		c.Int64, c.Valid = parseCode(string(v))
	case string:
		c.Int64, c.Valid = parseCode(v)
	}
	return nil
}

// Value implements driver.Valuer. An unset code is stored as 0, the
// undefined type.
func (c Code) Value() (driver.Value, error) {
	return c.Int64, nil
}

func parseCode(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}

// Timestamp is a nullable creation time. Like Code, scanning never fails:
// text that is not a recognised time leaves Valid false.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Layouts accepted for times stored as text, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	*t = Timestamp{}
	switch v := src.(type) {
	case time.Time:
		t.Time, t.Valid = v, true
	case int64:
		t.Time, t.Valid = time.Unix(v, 0).UTC(), true
	case []byte:
		t.Time, t.Valid = parseTimestamp(string(v))
	case string:
		t.Time, t.Valid = parseTimestamp(v)
	}
	return nil
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
