package fees

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

var today = time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC)

func days(n int) *time.Time {
	d := today.AddDate(0, 0, n)
	return &d
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestComputeStatus(t *testing.T) {
	tests := []struct {
		name             string
		total, paid      decimal.Decimal
		due              *time.Time
		wantState        string
		wantPending      decimal.Decimal
		wantDaysOverdue  int
		wantDaysUntilDue int
		wantErr          bool
	}{
		{name: "fully paid", total: dec(60000), paid: dec(60000), due: days(-10), wantState: StatePaid, wantPending: dec(0)},
		{name: "pending with future due", total: dec(50000), paid: dec(25000), due: days(15), wantState: StatePending, wantPending: dec(25000), wantDaysUntilDue: 15},
		{name: "pending due soon", total: dec(75000), paid: dec(15000), due: days(5), wantState: StatePending, wantPending: dec(60000), wantDaysUntilDue: 5},
		{name: "overdue", total: dec(75000), paid: dec(15000), due: days(-5), wantState: StateOverdue, wantPending: dec(60000), wantDaysOverdue: 5},
		{name: "overdue one day", total: dec(10000), paid: dec(0), due: days(-1), wantState: StateOverdue, wantPending: dec(10000), wantDaysOverdue: 1},
		{name: "due today is pending", total: dec(10000), paid: dec(0), due: days(0), wantState: StatePending, wantPending: dec(10000), wantDaysUntilDue: 0},
		{name: "no due date stays pending", total: dec(10000), paid: dec(5000), due: nil, wantState: StatePending, wantPending: dec(5000)},
		{name: "zero fee is paid", total: dec(0), paid: dec(0), due: nil, wantState: StatePaid, wantPending: dec(0)},
		{name: "past due but paid", total: dec(20000), paid: dec(20000), due: days(-30), wantState: StatePaid, wantPending: dec(0)},
		{name: "negative total rejected", total: dec(-1), paid: dec(0), wantErr: true},
		{name: "negative paid rejected", total: dec(100), paid: dec(-1), wantErr: true},
		{name: "paid over total rejected", total: dec(100), paid: dec(101), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ComputeStatus(tt.total, tt.paid, tt.due, today)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ComputeStatus() expected error, got nil")
				}
				if _, ok := err.(*core.ValidationError); !ok {
					t.Errorf("ComputeStatus() error = %T, want *core.ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeStatus() unexpected error: %v", err)
			}
			if st.State != tt.wantState {
				t.Errorf("State = %s, want %s", st.State, tt.wantState)
			}
			if !st.PendingAmount.Equal(tt.wantPending) {
				t.Errorf("PendingAmount = %s, want %s", st.PendingAmount, tt.wantPending)
			}
			if st.DaysOverdue != tt.wantDaysOverdue {
				t.Errorf("DaysOverdue = %d, want %d", st.DaysOverdue, tt.wantDaysOverdue)
			}
			if st.DaysUntilDue != tt.wantDaysUntilDue {
				t.Errorf("DaysUntilDue = %d, want %d", st.DaysUntilDue, tt.wantDaysUntilDue)
			}
			if got, want := st.HasDueDate, tt.due != nil; got != want {
				t.Errorf("HasDueDate = %v, want %v", got, want)
			}
		})
	}
}

func TestComputeStatusIgnoresTimeOfDay(t *testing.T) {
	due := time.Date(2021, 3, 9, 23, 50, 0, 0, time.UTC)
	at := time.Date(2021, 3, 10, 0, 5, 0, 0, time.UTC)

	st, err := ComputeStatus(dec(1000), dec(0), &due, at)
	if err != nil {
		t.Fatal(err)
	}
	if st.State != StateOverdue || st.DaysOverdue != 1 {
		t.Errorf("got %s/%d, want Overdue/1", st.State, st.DaysOverdue)
	}
}

func TestComputeStatusPaidPercent(t *testing.T) {
	st, err := ComputeStatus(dec(50000), dec(25000), nil, today)
	if err != nil {
		t.Fatal(err)
	}
	if st.PaidPercent != 50 {
		t.Errorf("PaidPercent = %f, want 50", st.PaidPercent)
	}
}
