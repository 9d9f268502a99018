package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReminderTone string

const (
	TonePolite ReminderTone = "polite"
	ToneFirm   ReminderTone = "firm"
	ToneUrgent ReminderTone = "urgent"
)

func ValidReminderTone(t ReminderTone) bool {
	switch t {
	case TonePolite, ToneFirm, ToneUrgent:
		return true
	}
	return false
}

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryOpened    DeliveryStatus = "opened"
	DeliveryClicked   DeliveryStatus = "clicked"
	DeliveryReplied   DeliveryStatus = "replied"
	DeliveryBounced   DeliveryStatus = "bounced"
)

func ValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliverySent, DeliveryDelivered, DeliveryOpened,
		DeliveryClicked, DeliveryReplied, DeliveryBounced:
		return true
	}
	return false
}

// InvoiceReminder is one entry in an invoice's reminder history,
// append-only except for delivery-status timestamp updates.
type InvoiceReminder struct {
	BaseModel
	InvoiceID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`

	// 1-based ordinal within the invoice's history.
	Sequence int          `gorm:"not null"`
	Tone     ReminderTone `gorm:"size:20;not null"`

	Subject string `gorm:"size:500;not null"`
	Body    string `gorm:"type:text;not null"`
	IsHTML  bool   `gorm:"default:false"`

	Status DeliveryStatus `gorm:"size:20;index;default:'sent'"`
	SentAt time.Time      `gorm:"not null"`

	DeliveredAt *time.Time
	OpenedAt    *time.Time
	ClickedAt   *time.Time
	RepliedAt   *time.Time
	BouncedAt   *time.Time

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
