package comm

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func amt(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestPersonalize(t *testing.T) {
	due := time.Date(2021, 3, 25, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		fields   Fields
		want     string
	}{
		{
			name:     "no placeholders",
			template: "Hello there, classes resume Monday.",
			fields:   Fields{StudentName: "Priya Sharma"},
			want:     "Hello there, classes resume Monday.",
		},
		{
			name:     "all known placeholders",
			template: "Dear {student_name}, {pending_amount} pending for {batch_name}, due {due_date}.",
			fields: Fields{
				StudentName:   "Priya Sharma",
				PendingAmount: amt(25000),
				BatchName:     "NEET Morning Batch",
				DueDate:       &due,
			},
			want: "Dear Priya Sharma, ₹25,000 pending for NEET Morning Batch, due 25-03-2021.",
		},
		{
			name:     "unknown placeholder passes through",
			template: "Hi {student_name}, see {portal_link}.",
			fields:   Fields{StudentName: "Rahul"},
			want:     "Hi Rahul, see {portal_link}.",
		},
		{
			name:     "missing value leaves placeholder",
			template: "Dear {student_name}, batch {batch_name}.",
			fields:   Fields{StudentName: "Rahul"},
			want:     "Dear Rahul, batch {batch_name}.",
		},
		{
			name:     "every occurrence replaced",
			template: "{student_name}, yes you {student_name}!",
			fields:   Fields{StudentName: "Anita"},
			want:     "Anita, yes you Anita!",
		},
		{
			name:     "payment confirmation",
			template: "Received {amount_paid} on {payment_date} from {student_name}.",
			fields: Fields{
				StudentName: "Rahul Kumar",
				AmountPaid:  amt(60000),
				PaymentDate: &paid,
			},
			want: "Received ₹60,000 on 01-03-2021 from Rahul Kumar.",
		},
		{
			name:     "days overdue",
			template: "Overdue by {days_overdue} days.",
			fields:   Fields{DaysOverdue: 12},
			want:     "Overdue by 12 days.",
		},
		{
			name:     "zero days overdue stays verbatim",
			template: "Overdue by {days_overdue} days.",
			fields:   Fields{},
			want:     "Overdue by {days_overdue} days.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Personalize(tt.template, tt.fields); got != tt.want {
				t.Errorf("Personalize() = %q; want %q", got, tt.want)
			}
		})
	}
}
