package comm

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vedsagar/educrm/core"
)

// Fields carries the per-recipient values substituted into a template.
// Nil pointers and zero values render as empty, leaving the placeholder
// untouched so that missing data stays visible in the message.
type Fields struct {
	StudentName   string
	PendingAmount *decimal.Decimal
	AmountPaid    *decimal.Decimal
	BatchName     string
	DueDate       *time.Time
	PaymentDate   *time.Time
	DaysOverdue   int
}

// placeholders is the closed set of supported tokens. Anything else in a
// template passes through verbatim.
func (f Fields) placeholders() [][2]string {
	pairs := [][2]string{
		{"{student_name}", f.StudentName},
		{"{batch_name}", f.BatchName},
	}
	if f.PendingAmount != nil {
		pairs = append(pairs, [2]string{"{pending_amount}", core.FormatCurrency(*f.PendingAmount)})
	}
	if f.AmountPaid != nil {
		pairs = append(pairs, [2]string{"{amount_paid}", core.FormatCurrency(*f.AmountPaid)})
	}
	if f.DueDate != nil {
		pairs = append(pairs, [2]string{"{due_date}", core.FormatDate(*f.DueDate)})
	}
	if f.PaymentDate != nil {
		pairs = append(pairs, [2]string{"{payment_date}", core.FormatDate(*f.PaymentDate)})
	}
	if f.DaysOverdue > 0 {
		pairs = append(pairs, [2]string{"{days_overdue}", strconv.Itoa(f.DaysOverdue)})
	}
	return pairs
}

// Personalize substitutes the known placeholders in a template. Replacement
// is literal, every occurrence is replaced, and a template with no
// placeholders comes back unchanged.
func Personalize(template string, f Fields) string {
	msg := template
	for _, p := range f.placeholders() {
		if p[1] == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, p[0], p[1])
	}
	return msg
}
