package demodb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/batch"
	"github.com/vedsagar/educrm/core/category"
	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/performance"
	"github.com/vedsagar/educrm/core/student"
)

func date(t time.Time) *time.Time { return &t }

// Seed loads the evaluation dataset: three categories, three batches,
// three students in different fee positions, two tests with scores, the
// payments behind the paid amounts and the stock message templates.
func Seed(ctx context.Context, db *DB) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	categories := NewCategoryRepository(db)
	for _, c := range []category.Category{
		{Name: "NEET Preparation", Description: "Medical entrance exam preparation", DefaultFee: decimal.NewFromInt(50000), DurationMo: 12, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "JEE Main & Advanced", Description: "Engineering entrance exam preparation", DefaultFee: decimal.NewFromInt(60000), DurationMo: 10, Active: true, CreatedAt: now, UpdatedAt: now},
		{Name: "UPSC Preparation", Description: "Civil services exam preparation", DefaultFee: decimal.NewFromInt(75000), DurationMo: 24, Active: true, CreatedAt: now, UpdatedAt: now},
	} {
		if _, err := categories.CreateCategory(ctx, c); err != nil {
			return err
		}
	}

	batches := NewBatchRepository(db)
	for _, b := range []batch.Batch{
		{
			Name: "NEET Morning Batch", Category: "NEET Preparation", CategoryID: 1,
			Schedule: "Mon-Fri 9AM-12PM", StartDate: date(today), EndDate: date(today.AddDate(1, 0, 0)),
			Fee: decimal.NewFromInt(50000), Capacity: 30, Teacher: "Dr. Sharma",
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "JEE Advanced Batch", Category: "JEE Main & Advanced", CategoryID: 2,
			Schedule: "Mon-Fri 2PM-5PM", StartDate: date(today), EndDate: date(today.AddDate(0, 10, 0)),
			Fee: decimal.NewFromInt(60000), Capacity: 25, Teacher: "Prof. Kumar",
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "UPSC Foundation", Category: "UPSC Preparation", CategoryID: 3,
			Schedule: "Weekends 10AM-4PM", StartDate: date(today.AddDate(0, 1, 0)), EndDate: date(today.AddDate(2, 0, 0)),
			Fee: decimal.NewFromInt(75000), Capacity: 40, Teacher: "Ms. Verma",
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
	} {
		if _, err := batches.CreateBatch(ctx, b); err != nil {
			return err
		}
	}

	students := NewStudentRepository(db)
	for _, s := range []student.Student{
		{
			FullName: "Priya Sharma", ParentPhone: "9876543210", StudentPhone: "9876543211",
			Email: "priya.sharma@email.com", Address: "123 MG Road, Delhi",
			DateOfBirth: date(time.Date(2005, 3, 15, 0, 0, 0, 0, time.UTC)),
			Category:    "NEET Preparation", Batch: "NEET Morning Batch", BatchID: 1,
			TotalFee: decimal.NewFromInt(50000), PaidAmount: decimal.NewFromInt(25000),
			FeeDueDate: date(today.AddDate(0, 0, 15)), AdmissionDate: date(today.AddDate(0, 0, -30)),
			Status: student.StatusActive, Notes: "Excellent student", CreatedAt: now, UpdatedAt: now,
		},
		{
			FullName: "Rahul Kumar", ParentPhone: "8765432109", StudentPhone: "8765432108",
			Email: "rahul.kumar@email.com", Address: "456 CP, Mumbai",
			DateOfBirth: date(time.Date(2004, 7, 20, 0, 0, 0, 0, time.UTC)),
			Category:    "JEE Main & Advanced", Batch: "JEE Advanced Batch", BatchID: 2,
			TotalFee: decimal.NewFromInt(60000), PaidAmount: decimal.NewFromInt(60000),
			Discount:   decimal.NewFromInt(5000),
			FeeDueDate: date(today.AddDate(0, 0, -10)), AdmissionDate: date(today.AddDate(0, 0, -45)),
			Status: student.StatusActive, Notes: "Top performer", CreatedAt: now, UpdatedAt: now,
		},
		{
			FullName: "Anita Singh", ParentPhone: "7654321098", StudentPhone: "7654321097",
			Email: "anita.singh@email.com", Address: "789 Civil Lines, Lucknow",
			DateOfBirth: date(time.Date(2003, 12, 5, 0, 0, 0, 0, time.UTC)),
			Category:    "UPSC Preparation", Batch: "UPSC Foundation", BatchID: 3,
			TotalFee: decimal.NewFromInt(75000), PaidAmount: decimal.NewFromInt(15000),
			FeeDueDate: date(today.AddDate(0, 0, 5)), AdmissionDate: date(today.AddDate(0, 0, -10)),
			Status: student.StatusActive, Notes: "Needs guidance", CreatedAt: now, UpdatedAt: now,
		},
	} {
		if _, err := students.CreateStudent(ctx, s); err != nil {
			return err
		}
	}

	tests := NewPerformanceRepository(db)
	for _, t := range []performance.Test{
		{
			Name: "NEET Mock Test 1", Subject: "Biology", Date: today.AddDate(0, 0, -7),
			MaxMarks: 200, Category: "NEET Preparation", Batch: "NEET Morning Batch", BatchID: 1,
			Description: "First mock test", Status: performance.StatusCompleted, CreatedAt: now,
		},
		{
			Name: "JEE Mathematics Test", Subject: "Mathematics", Date: today.AddDate(0, 0, -3),
			MaxMarks: 100, Category: "JEE Main & Advanced", Batch: "JEE Advanced Batch", BatchID: 2,
			Description: "Mathematics assessment", Status: performance.StatusCompleted, CreatedAt: now,
		},
	} {
		if _, err := tests.CreateTest(ctx, t); err != nil {
			return err
		}
	}
	for _, s := range []performance.Score{
		{TestID: 1, StudentID: 1, MarksObtained: 160, Attendance: performance.AttendancePresent, Remarks: "Good performance", CreatedAt: now},
		{TestID: 2, StudentID: 2, MarksObtained: 85, Attendance: performance.AttendancePresent, Remarks: "Excellent", CreatedAt: now},
	} {
		if _, err := tests.UpsertScore(ctx, s); err != nil {
			return err
		}
	}

	payments := NewPaymentRepository(db)
	for _, p := range []fees.Payment{
		{
			StudentID: 1, StudentName: "Priya Sharma", Amount: decimal.NewFromInt(25000),
			Mode: "UPI", TransactionRef: "UPI123456", Remarks: "First installment",
			PaidAt: today.AddDate(0, 0, -30), CreatedAt: now,
		},
		{
			StudentID: 2, StudentName: "Rahul Kumar", Amount: decimal.NewFromInt(60000),
			Mode: "Bank Transfer", TransactionRef: "TXN789012", Remarks: "Full payment",
			PaidAt: today.AddDate(0, 0, -45), CreatedAt: now,
		},
		{
			StudentID: 3, StudentName: "Anita Singh", Amount: decimal.NewFromInt(15000),
			Mode: "Cash", TransactionRef: "CASH001", Remarks: "Registration amount",
			PaidAt: today.AddDate(0, 0, -10), CreatedAt: now,
		},
	} {
		if _, err := payments.CreatePayment(ctx, p); err != nil {
			return err
		}
	}

	templates := NewTemplateRepository(db)
	for _, t := range comm.StockTemplates() {
		t.IsActive = true
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err := templates.CreateTemplate(ctx, t); err != nil {
			return err
		}
	}

	activities := NewActivityRepository(db)
	_, err := activities.CreateActivity(ctx, activity.Activity{
		Description: "Demo data loaded",
		Type:        activity.TypeSystem,
		CreatedAt:   now,
	})
	return err
}
