package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage form of calendar days.
const DateLayout = "2006-01-02"

// Date is a calendar day. DATE columns come back from the drivers as
// time.Time (the MySQL connector runs with ParseTime, sqlite infers it from
// the column type), so Scan folds either shape back into the plain
// YYYY-MM-DD string the API speaks. The zero Date is NULL in the database
// and null on the wire.
type Date struct {
	day string
}

func NewDate(s string) Date { return Date{day: s} }

func (d Date) String() string { return d.day }

func (d Date) IsZero() bool { return d.day == "" }

func (d Date) Value() (driver.Value, error) {
	if d.day == "" {
		return nil, nil
	}
	return d.day, nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		d.day = ""
	case time.Time:
		d.day = v.Format(DateLayout)
	case []byte:
		d.day = clipDay(string(v))
	case string:
		d.day = clipDay(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

// Some drivers hand DATE columns back as text with a midnight time suffix.
func clipDay(s string) string {
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.day == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.day)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		d.day = ""
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", *s, err)
	}
	d.day = t.Format(DateLayout)
	return nil
}

func (Date) GormDataType() string { return "date" }
