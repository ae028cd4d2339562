package performance

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{79.9, "B+"},
		{70, "B+"},
		{69.9, "B"},
		{60, "B"},
		{59.9, "C"},
		{50, "C"},
		{49.9, "D"},
		{40, "D"},
		{39.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.percent); got != tt.want {
			t.Errorf("Grade(%v) = %q; want %q", tt.percent, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		marks, maxMarks float64
		want            float64
	}{
		{150, 200, 75},
		{0, 100, 0},
		{100, 100, 100},
		{50, 0, 0}, // degenerate max
	}
	for _, tt := range tests {
		if got := Percent(tt.marks, tt.maxMarks); got != tt.want {
			t.Errorf("Percent(%v, %v) = %v; want %v", tt.marks, tt.maxMarks, got, tt.want)
		}
	}
}
