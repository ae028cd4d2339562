package comm

import (
	"fmt"
	"time"

	"github.com/vedsagar/educrm/core"
)

// Template categories.
var TemplateCategories = []string{"General", "Fee Reminder", "Exam Notice", "Holiday Notice", "Admission"}

const CategoryFeeReminder = "Fee Reminder"

// Template is a reusable message with placeholders.
type Template struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	IsActive   bool      `json:"is_active"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

type NewTemplate struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required,min=5"`
}

func (nt *NewTemplate) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Category = core.CleanString(nt.Category)
	if err := core.Validate.Struct(nt); err != nil {
		return err
	}
	if !isValidCategory(nt.Category) {
		return core.NewValidationError(nil, core.FieldError{Field: "category", Error: "unknown template category"})
	}
	return nil
}

type UpdateTemplate struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=100"`
	Category string `json:"category"`
	Content  string `json:"content" validate:"omitempty,min=5"`
	IsActive *bool  `json:"is_active"`
}

func (ut *UpdateTemplate) Validate() error {
	ut.Name = core.CleanString(ut.Name)
	ut.Category = core.CleanString(ut.Category)
	if err := core.Validate.Struct(ut); err != nil {
		return err
	}
	if ut.Category != "" && !isValidCategory(ut.Category) {
		return core.NewValidationError(nil, core.FieldError{Field: "category", Error: "unknown template category"})
	}
	return nil
}

func isValidCategory(c string) bool {
	for _, tc := range TemplateCategories {
		if tc == c {
			return true
		}
	}
	return false
}

// Log statuses.
const (
	LogStatusSuccess = "Success"
	LogStatusFailed  = "Failed"
	LogStatusPartial = "Partial"
)

// Log records one outbound communication batch.
type Log struct {
	ID             int       `json:"id"`
	Timestamp      time.Time `json:"timestamp"` // UTC
	RecipientCount int       `json:"recipient_count"`
	MessagePreview string    `json:"message_preview"`
	TemplateUsed   string    `json:"template_used,omitempty"`
	ActivityType   string    `json:"activity_type"`
	Status         string    `json:"status"`
}

// previewLimit caps MessagePreview length.
const previewLimit = 100

func preview(msg string) string {
	runes := []rune(msg)
	if len(runes) <= previewLimit {
		return msg
	}
	return string(runes[:previewLimit])
}

// Recipient is one target of a reminder batch.
type Recipient struct {
	StudentID int
	Name      string
	Phone     string
	Fields    Fields
}

// Reminder is one prepared message: personalized text plus the WhatsApp
// deep link, or the error that kept it from being built.
type Reminder struct {
	StudentID int    `json:"student_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Message   string `json:"message,omitempty"`
	Link      string `json:"link,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult summarizes a reminder batch: every recipient gets a row, and
// Prepared counts the ones that got a working link.
type BatchResult struct {
	Reminders []Reminder `json:"reminders"`
	Prepared  int        `json:"prepared"`
	Failed    int        `json:"failed"`
}

// Summary renders the "M of N" line shown after a batch.
func (br BatchResult) Summary() string {
	return fmt.Sprintf("%d of %d reminders prepared", br.Prepared, len(br.Reminders))
}
