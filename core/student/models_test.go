package student_test

import (
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/student"
	testutil "github.com/vedsagar/educrm/tests"
)

func TestMain(m *testing.M) {
	testutil.InitValidators()
	os.Exit(m.Run())
}

var today = time.Date(2021, 3, 10, 12, 0, 0, 0, time.UTC)

func sample() student.Student {
	due := today.AddDate(0, 0, 5)
	adm := today.AddDate(0, -2, 0)
	return student.Student{
		ID:            1,
		FullName:      "Priya Sharma",
		ParentPhone:   "9876543210",
		StudentPhone:  "9876543211",
		Category:      "NEET Preparation",
		Batch:         "NEET Morning Batch",
		TotalFee:      decimal.NewFromInt(50000),
		PaidAmount:    decimal.NewFromInt(25000),
		FeeDueDate:    &due,
		AdmissionDate: &adm,
		Status:        student.StatusActive,
	}
}

func TestPendingAmount(t *testing.T) {
	s := sample()
	if !s.PendingAmount().Equal(decimal.NewFromInt(25000)) {
		t.Errorf("PendingAmount() = %s; want 25000", s.PendingAmount())
	}
	if s.IsPaid() {
		t.Error("IsPaid() = true; want false")
	}

	s.PaidAmount = s.TotalFee
	if !s.IsPaid() {
		t.Error("IsPaid() = false; want true")
	}

	// inconsistent records never report negative dues
	s.PaidAmount = decimal.NewFromInt(60000)
	if s.PendingAmount().Sign() != 0 {
		t.Errorf("PendingAmount() = %s; want 0", s.PendingAmount())
	}
}

func TestIsOverdue(t *testing.T) {
	s := sample()
	if s.IsOverdue(today) {
		t.Error("IsOverdue() = true for a future due date")
	}

	past := today.AddDate(0, 0, -3)
	s.FeeDueDate = &past
	if !s.IsOverdue(today) {
		t.Error("IsOverdue() = false for a past due date")
	}

	// due today is not overdue yet
	s.FeeDueDate = &today
	if s.IsOverdue(today) {
		t.Error("IsOverdue() = true on the due date itself")
	}

	s.FeeDueDate = nil
	if s.IsOverdue(today) {
		t.Error("IsOverdue() = true without a due date")
	}

	s = sample()
	s.FeeDueDate = &past
	s.PaidAmount = s.TotalFee
	if s.IsOverdue(today) {
		t.Error("IsOverdue() = true for a fully paid student")
	}
}

func TestQueryFilterMatches(t *testing.T) {
	s := sample()

	tests := []struct {
		name string
		qf   student.QueryFilter
		want bool
	}{
		{"empty filter", student.QueryFilter{}, true},
		{"search name case-insensitive", student.QueryFilter{Search: "priya"}, true},
		{"search partial name", student.QueryFilter{Search: "Sharma"}, true},
		{"search parent phone", student.QueryFilter{Search: "9876543210"}, true},
		{"search student phone", student.QueryFilter{Search: "9876543211"}, true},
		{"search miss", student.QueryFilter{Search: "rahul"}, false},
		{"category match", student.QueryFilter{Category: "NEET Preparation"}, true},
		{"category miss", student.QueryFilter{Category: "UPSC Preparation"}, false},
		{"batch match", student.QueryFilter{Batch: "NEET Morning Batch"}, true},
		{"fee status pending", student.QueryFilter{FeeStatus: student.FeeStatusPending}, true},
		{"fee status paid", student.QueryFilter{FeeStatus: student.FeeStatusPaid}, false},
		{"fee status overdue", student.QueryFilter{FeeStatus: student.FeeStatusOverdue}, false},
		{"unknown fee status", student.QueryFilter{FeeStatus: "Waived"}, false},
		{"admitted window hit", student.QueryFilter{AdmittedFrom: today.AddDate(0, -3, 0), AdmittedTo: today}, true},
		{"admitted window miss", student.QueryFilter{AdmittedFrom: today.AddDate(0, -1, 0)}, false},
		{"conjunction", student.QueryFilter{Search: "priya", Batch: "JEE Advanced Batch"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.qf.Matches(s, today); got != tt.want {
				t.Errorf("Matches() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestNewStudentValidate(t *testing.T) {
	valid := func() student.NewStudent {
		return student.NewStudent{
			FullName:    "Vikram Mehta",
			ParentPhone: "9123456789",
			Category:    "NEET Preparation",
			Batch:       "NEET Morning Batch",
			TotalFee:    decimal.NewFromInt(50000),
			PaidAmount:  decimal.NewFromInt(10000),
		}
	}

	ns := valid()
	if err := ns.Validate(); err != nil {
		t.Fatalf("Validate() = %v; want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*student.NewStudent)
	}{
		{"negative total", func(ns *student.NewStudent) { ns.TotalFee = decimal.NewFromInt(-1) }},
		{"paid over total", func(ns *student.NewStudent) { ns.PaidAmount = decimal.NewFromInt(60000) }},
		{"over the cap", func(ns *student.NewStudent) { ns.TotalFee = decimal.NewFromInt(2000000) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := valid()
			tt.mutate(&ns)
			err := ns.Validate()
			if err == nil {
				t.Fatal("Validate() = nil; want error")
			}
			if _, ok := errors.Cause(err).(*core.ValidationError); !ok {
				t.Errorf("Validate() error type = %T; want *core.ValidationError", err)
			}
		})
	}
}
