package performance

import (
	"time"

	"github.com/vedsagar/educrm/core"
)

// Test statuses.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Score attendance values.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

type Test struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	Date        time.Time `json:"date"`
	MaxMarks    float64   `json:"max_marks"`
	Category    string    `json:"category,omitempty"`
	Batch       string    `json:"batch"`
	BatchID     int       `json:"batch_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

type NewTest struct {
	Name        string    `json:"name" validate:"required,min=2,max=150"`
	Subject     string    `json:"subject" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	MaxMarks    float64   `json:"max_marks" validate:"required,gt=0"`
	Category    string    `json:"category"`
	Batch       string    `json:"batch" validate:"required"`
	BatchID     int       `json:"batch_id"`
	Description string    `json:"description"`
}

func (nt *NewTest) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Subject = core.CleanString(nt.Subject)
	nt.Batch = core.CleanString(nt.Batch)
	return core.Validate.Struct(nt)
}

// Score is one student's result in a test.
type Score struct {
	ID            int       `json:"id"`
	TestID        int       `json:"test_id"`
	StudentID     int       `json:"student_id"`
	StudentName   string    `json:"student_name,omitempty"`
	MarksObtained float64   `json:"marks_obtained"`
	Attendance    string    `json:"attendance"`
	Remarks       string    `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"` // UTC
}

type NewScore struct {
	TestID        int     `json:"test_id" validate:"required"`
	StudentID     int     `json:"student_id" validate:"required"`
	MarksObtained float64 `json:"marks_obtained" validate:"min=0"`
	Attendance    string  `json:"attendance" validate:"required,oneof=Present Absent"`
	Remarks       string  `json:"remarks"`
}

func (ns *NewScore) Validate(maxMarks float64) error {
	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	if ns.MarksObtained > maxMarks {
		return core.NewValidationError(nil, core.FieldError{
			Field: "marks_obtained", Error: "marks cannot exceed the test maximum",
		})
	}
	return nil
}

// Result is a score joined with its test, plus the derived figures.
type Result struct {
	Score   Score   `json:"score"`
	Test    Test    `json:"test"`
	Percent float64 `json:"percent"`
	Grade   string  `json:"grade"`
}

// Percent returns the score as a percentage of the test maximum.
func Percent(marks, maxMarks float64) float64 {
	if maxMarks <= 0 {
		return 0
	}
	return marks / maxMarks * 100
}

// Grade maps a percentage to a letter grade.
func Grade(percent float64) string {
	switch {
	case percent >= 90:
		return "A+"
	case percent >= 80:
		return "A"
	case percent >= 70:
		return "B+"
	case percent >= 60:
		return "B"
	case percent >= 50:
		return "C"
	case percent >= 40:
		return "D"
	}
	return "F"
}
