package db_models

import "github.com/google/uuid"

// ReminderSettings is the per-owner reminder policy, one row per user,
// created lazily with defaults on first settings read.
type ReminderSettings struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	IsAutomatedReminders bool `gorm:"default:true"`

	// Days after the due date for the first reminder. Negative means
	// before the due date.
	FirstReminderDays int `gorm:"default:3"`
	// Days between follow-ups.
	FollowUpFrequency int `gorm:"default:7"`
	// Ceiling on reminders per invoice.
	MaxReminders int `gorm:"default:3"`

	FirstReminderTone  ReminderTone `gorm:"size:20;default:'polite'"`
	SecondReminderTone ReminderTone `gorm:"size:20;default:'firm'"`
	ThirdReminderTone  ReminderTone `gorm:"size:20;default:'urgent'"`
}

// ToneForSequence maps a reminder sequence number to the configured
// escalation tone: 1 -> first, 2 -> second, >=3 -> third.
func (s *ReminderSettings) ToneForSequence(sequence int) ReminderTone {
	switch {
	case sequence <= 1:
		return s.FirstReminderTone
	case sequence == 2:
		return s.SecondReminderTone
	default:
		return s.ThirdReminderTone
	}
}
