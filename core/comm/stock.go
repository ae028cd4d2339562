package comm

const gentleReminder = `Dear {student_name},

This is a gentle reminder that your fee payment of {pending_amount} for {batch_name} is pending.

Please make the payment at your earliest convenience to avoid any interruption in your classes.

Due Date: {due_date}

Thank you for your cooperation!

Best regards,
EduCRM Team`

const urgentReminder = `Dear Parent,

URGENT REMINDER: The fee payment of {pending_amount} for your ward {student_name} ({batch_name}) is overdue by {days_overdue} day(s).

Please clear the dues immediately to ensure uninterrupted classes.

Original Due Date: {due_date}

For any queries, please contact us immediately.

EduCRM Team`

const finalNotice = `FINAL NOTICE

Dear Parent,

Despite previous reminders, the fee of {pending_amount} for {student_name} ({batch_name}) remains unpaid.

Please clear the outstanding amount within 24 hours to avoid suspension of classes.

Due Date: {due_date}

Contact our office immediately to resolve this matter.

EduCRM Administration`

const paymentConfirmation = `PAYMENT CONFIRMATION

Dear Parent,

We acknowledge the receipt of {amount_paid} for {student_name}'s fee payment on {payment_date}.

Thank you for your prompt payment!

Best regards,
EduCRM Team`

// StockTemplates returns the built-in message templates. Stores seed them
// on first run.
func StockTemplates() []Template {
	return []Template{
		{Name: "Gentle Fee Reminder", Category: CategoryFeeReminder, Content: gentleReminder},
		{Name: "Urgent Fee Reminder", Category: CategoryFeeReminder, Content: urgentReminder},
		{Name: "Final Notice", Category: CategoryFeeReminder, Content: finalNotice},
		{Name: "Payment Confirmation", Category: "General", Content: paymentConfirmation},
	}
}
