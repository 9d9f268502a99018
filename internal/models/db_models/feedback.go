package db_models

import "github.com/google/uuid"

type Feedback struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Comment string    `gorm:"type:text"`
	Rating  int       `gorm:"not null"`
}
