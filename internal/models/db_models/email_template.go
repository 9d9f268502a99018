package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TemplateCategory string

const (
	CategoryReminder  TemplateCategory = "reminder"
	CategoryThankYou  TemplateCategory = "thank_you"
	CategoryFollowUp  TemplateCategory = "follow_up"
	CategoryCustom    TemplateCategory = "custom"
)

// EmailTemplate is an optional per-owner override of the built-in tone
// templates. At most one template may be the default for a given
// (owner, tone) pair; enforced by unsetting siblings on write.
type EmailTemplate struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name     string           `gorm:"size:255;not null"`
	Subject  string           `gorm:"size:500;not null"`
	HTMLBody string           `gorm:"type:text"`
	TextBody string           `gorm:"type:text"`
	Tone     ReminderTone     `gorm:"size:20;index;not null"`
	Category TemplateCategory `gorm:"size:30;default:'reminder'"`

	IsDefault bool `gorm:"default:false"`
	IsActive  bool `gorm:"default:true"`

	// Placeholder names the body refers to, for editor hints.
	Variables datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
