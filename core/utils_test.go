package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{-500, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{25000, "₹25,000"},
		{99999, "₹99,999"},
		{100000, "₹1.0L"},
		{250000, "₹2.5L"},
		{9999999, "₹100.0L"},
		{10000000, "₹1.0Cr"},
		{25000000, "₹2.5Cr"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(decimal.NewFromInt(tt.amount)); got != tt.want {
			t.Errorf("FormatCurrency(%d) = %q; want %q", tt.amount, got, tt.want)
		}
	}
}

func TestStripPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765-43210", "919876543210"},
		{"(079) 2630 5001", "07926305001"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripPhone(tt.in); got != tt.want {
			t.Errorf("StripPhone(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"9876543210", "919876543210"},
		{"09876543210", "919876543210"},
		{"919876543210", "919876543210"},
		{"+91 98765 43210", "919876543210"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"9876543210", "6123456789", "09876543210", "919876543210", "+91 98765 43210"}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = false; want true", p)
		}
	}
	invalid := []string{"", "12345", "5876543210", "05876543210", "449876543210", "98765432101234"}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("IsValidPhone(%q) = true; want false", p)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"", "priya@example.com", "a.b+c@sub.example.co.in"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false; want true", e)
		}
	}
	invalid := []string{"priya", "priya@", "@example.com", "priya@example"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true; want false", e)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2021, 3, d, hour, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", day(10, 0), day(10, 23), 0},
		{"next day", day(10, 0), day(11, 0), 1},
		{"previous day", day(10, 0), day(9, 0), -1},
		{"time of day ignored", day(10, 23), day(11, 1), 1},
		{"two weeks", day(1, 0), day(15, 0), 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2021, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		delta time.Duration
		want  string
	}{
		{30 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{45 * time.Minute, "45 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.delta), now); got != tt.want {
			t.Errorf("TimeAgo(-%v) = %q; want %q", tt.delta, got, tt.want)
		}
	}
	if got := TimeAgo(time.Time{}, now); got != "just now" {
		t.Errorf("TimeAgo(zero) = %q; want %q", got, "just now")
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2021, 3, 25, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2021-03-25", "25-03-2021", "2021-03-25T00:00:00Z"} {
		if got := ParseDate(s); !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v; want %v", s, got, want)
		}
	}
	if got := ParseDate("next tuesday"); !got.IsZero() {
		t.Errorf("ParseDate(garbage) = %v; want zero", got)
	}
}
