package db_models

import "github.com/google/uuid"

// AccountSettings carries the owner's profile fields and outbound
// email sender configuration. One row per user, default-initialized
// lazily on first read. Reminders cannot be dispatched until a sender
// email is configured.
type AccountSettings struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	BusinessName string `gorm:"size:255"`
	Address      string `gorm:"size:500"`
	Phone        string `gorm:"size:50"`

	SenderName  string `gorm:"size:255"`
	SenderEmail string `gorm:"size:255"`
}

func (s *AccountSettings) HasSender() bool {
	return s.SenderEmail != ""
}
