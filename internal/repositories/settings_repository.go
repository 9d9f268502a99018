package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
)

type SettingsRepository interface {
	GetOrCreateReminderSettings(ctx context.Context, userID uuid.UUID) (*dbm.ReminderSettings, error)
	SaveReminderSettings(ctx context.Context, settings *dbm.ReminderSettings) error
	GetOrCreateAccountSettings(ctx context.Context, userID uuid.UUID) (*dbm.AccountSettings, error)
	SaveAccountSettings(ctx context.Context, settings *dbm.AccountSettings) error
	ListAutomationEnabled(ctx context.Context) ([]dbm.ReminderSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetOrCreateReminderSettings(ctx context.Context, userID uuid.UUID) (*dbm.ReminderSettings, error) {
	var settings dbm.ReminderSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = dbm.ReminderSettings{
		UserID:               userID,
		IsAutomatedReminders: true,
		FirstReminderDays:    3,
		FollowUpFrequency:    7,
		MaxReminders:         3,
		FirstReminderTone:    dbm.TonePolite,
		SecondReminderTone:   dbm.ToneFirm,
		ThirdReminderTone:    dbm.ToneUrgent,
	}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveReminderSettings(ctx context.Context, settings *dbm.ReminderSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) GetOrCreateAccountSettings(ctx context.Context, userID uuid.UUID) (*dbm.AccountSettings, error) {
	var settings dbm.AccountSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = dbm.AccountSettings{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) SaveAccountSettings(ctx context.Context, settings *dbm.AccountSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) ListAutomationEnabled(ctx context.Context) ([]dbm.ReminderSettings, error) {
	var settings []dbm.ReminderSettings
	err := r.db.WithContext(ctx).
		Where("is_automated_reminders = ?", true).
		Find(&settings).Error
	return settings, err
}
