package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDateTime is a second-precision timestamp rendered without an offset
// in the configured location.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

// DisplayLayout is the short form used in transcripts and listings.
const DisplayLayout = "2006-01-02 15:04"

var location = time.Local

func SetLocation(loc *time.Location) {
	if loc != nil {
		location = loc
	}
}

func Now() LocalDateTime {
	return From(time.Now())
}

// From converts t to the configured location at second precision.
func From(t time.Time) LocalDateTime {
	if t.IsZero() {
		return LocalDateTime{}
	}
	return LocalDateTime{Time: t.In(location).Truncate(time.Second)}
}

func (ldt LocalDateTime) Display() string {
	if ldt.IsZero() {
		return ""
	}
	return ldt.In(location).Format(DisplayLayout)
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, location)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(location).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Equal(other LocalDateTime) bool {
	return ldt.Time.Equal(other.Time)
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v.In(location)
		return nil
	case []byte:
		parsed, err := time.ParseInLocation(layout, string(v), location)
		if err != nil {
			return err
		}
		ldt.Time = parsed
		return nil
	case string:
		parsed, err := time.ParseInLocation(layout, v, location)
		if err != nil {
			return err
		}
		ldt.Time = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}
