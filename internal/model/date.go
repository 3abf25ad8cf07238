package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"StockDLC/internal/apperr"
)

// DateLayout — единственный принимаемый формат DLC (ISO-8601, YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MinDateYear — нижняя граница года DLC; более ранние даты совпадают
// с нулевым значением Date и не сохраняются.
const MinDateYear = 1900

// Date — календарная дата без времени суток. Внутри хранится полночь UTC,
// поэтому сравнение двух Date совпадает с календарным порядком.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf берёт календарную дату момента t в его собственной временной зоне.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate строго разбирает YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, apperr.Validation("dlc must be a date in YYYY-MM-DD format (e.g. 2025-10-31), got %q", s)
	}
	if t.Year() < MinDateYear {
		return Date{}, apperr.Validation("dlc year must be %d or later, got %q", MinDateYear, s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) Time() time.Time { return d.t }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// GormDataType задаёт тип колонки для миграций GORM.
func (Date) GormDataType() string { return "date" }

// Value сохраняет дату строкой YYYY-MM-DD: в SQLite это TEXT,
// и лексический порядок совпадает с календарным.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("model.Date: unsupported scan type %T", src)
	}
}

func (d *Date) scanText(s string) error {
	// драйвер может вернуть дату с хвостом времени: "2025-11-01 00:00:00+00:00"
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("model.Date: %w", err)
	}
	*d = Date{t: t}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return apperr.Validation("dlc must be a string in YYYY-MM-DD format")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
