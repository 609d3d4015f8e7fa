package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateTimeLayout is the wire format for timestamps: local date-time with
// second precision and no zone designator.
const DateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a timestamp serialized without a timezone offset.
type LocalDateTime struct {
	time.Time
}

// Now returns the current time truncated to second precision.
func Now() LocalDateTime {
	return LocalDateTime{Time: time.Now().Truncate(time.Second)}
}

func (t LocalDateTime) String() string {
	return t.Format(DateTimeLayout)
}

// MarshalJSON encodes the timestamp as a quoted date-time string.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted date-time string. Offsets and zone
// designators are rejected.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date-time %s: expected quoted %s string", s, DateTimeLayout)
	}
	parsed, err := time.Parse(DateTimeLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date-time %s: expected format %s", s, DateTimeLayout)
	}
	t.Time = parsed
	return nil
}

// Value implements driver.Valuer for TIMESTAMP columns.
func (t LocalDateTime) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner.
func (t *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.Truncate(time.Second)
		return nil
	case []byte:
		parsed, err := time.Parse(DateTimeLayout, string(v))
		if err != nil {
			return fmt.Errorf("cannot scan %q into LocalDateTime: %w", v, err)
		}
		t.Time = parsed
		return nil
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
}
