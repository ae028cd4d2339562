package nocodb

import (
	"strings"
	"time"
)

// Date marshals to NocoDB's date format (YYYY-MM-DD) and tolerates the
// timestamp formats NocoDB hands back.
type Date struct {
	time.Time
}

const dateFmt = "2006-01-02"

var dateParseFmts = []string{dateFmt, time.RFC3339, "2006-01-02 15:04:05"}

func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateFmt) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, fmt := range dateParseFmts {
		if t, err := time.Parse(fmt, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	// malformed dates read as absent rather than failing the record
	d.Time = time.Time{}
	return nil
}

// TimePtr converts back to the domain representation, where absent dates
// are nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d *Date) OrZero() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
