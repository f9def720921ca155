package models

import (
	"encoding/json"
	"time"

	dErrors "people-registry/pkg/domain-errors"
)

// DateLayout is the only accepted wire format for dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone. It is stored as UTC
// midnight so equal dates compare equal with ==.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string. Impossible dates such as 2023-02-30
// are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, dErrors.Wrap(err, dErrors.CodeValidation, "nascimento must be a valid date in YYYY-MM-DD format")
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from its parts; out-of-range parts are normalized
// the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Year() int { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int { return d.t.Day() }
func (d Date) IsZero() bool { return d.t.IsZero() }
func (d Date) String() string { return d.t.Format(DateLayout) }
func (d Date) Time() time.Time { return d.t }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
