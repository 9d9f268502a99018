package db_models

type WaitlistEntry struct {
	BaseModel
	Name  string `gorm:"size:255"`
	Email string `gorm:"size:255;uniqueIndex;not null"`
}
