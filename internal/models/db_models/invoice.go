package db_models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue,
		InvoiceStatusCancelled, InvoiceStatusDraft, InvoiceStatusPartiallyPaid:
		return true
	}
	return false
}

type Invoice struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_invoice_number"`

	ClientName  string `gorm:"size:255;not null"`
	ClientEmail string `gorm:"size:255;not null"`

	// Unique within the owning user's invoices, not globally.
	InvoiceNumber string `gorm:"size:50;not null;uniqueIndex:idx_user_invoice_number"`

	// Exact decimal string, e.g. "1250.00". Kept as text to avoid float error.
	Amount   string `gorm:"type:decimal(12,2);not null"`
	Currency string `gorm:"size:3;not null;default:'USD'"`

	IssueDate time.Time `gorm:"not null"`
	DueDate   time.Time `gorm:"not null"`

	Status InvoiceStatus `gorm:"size:20;index;default:'pending'"`

	Description string `gorm:"type:text"`
	Notes       string `gorm:"type:text"`

	Reminders []InvoiceReminder `gorm:"foreignKey:InvoiceID"`
}

// IsDisplayedOverdue reports the derived display state: stored status
// stays pending until explicitly changed, but a past-due pending
// invoice is presented as overdue.
func (i *Invoice) IsDisplayedOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusPending && i.DueDate.Before(now)
}
