package services

import (
	"context"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

type SettingsServiceInterface interface {
	GetReminderSettings(ctx context.Context, userID uuid.UUID) (*dbm.ReminderSettings, error)
	UpdateReminderSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateReminderSettingsRequest) (*dbm.ReminderSettings, error)
	GetAccountSettings(ctx context.Context, userID uuid.UUID) (*dbm.AccountSettings, error)
	UpdateAccountSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateAccountSettingsRequest) (*dbm.AccountSettings, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetReminderSettings(ctx context.Context, userID uuid.UUID) (*dbm.ReminderSettings, error) {
	settings, err := s.settingsRepo.GetOrCreateReminderSettings(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (s *SettingsService) UpdateReminderSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateReminderSettingsRequest) (*dbm.ReminderSettings, error) {
	settings, err := s.settingsRepo.GetOrCreateReminderSettings(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.IsAutomatedReminders != nil {
		settings.IsAutomatedReminders = *req.IsAutomatedReminders
	}
	if req.FirstReminderDays != nil {
		settings.FirstReminderDays = *req.FirstReminderDays
	}
	if req.FollowUpFrequency != nil {
		settings.FollowUpFrequency = *req.FollowUpFrequency
	}
	if req.MaxReminders != nil {
		settings.MaxReminders = *req.MaxReminders
	}

	for _, tone := range []struct {
		in  *string
		out *dbm.ReminderTone
	}{
		{req.FirstReminderTone, &settings.FirstReminderTone},
		{req.SecondReminderTone, &settings.SecondReminderTone},
		{req.ThirdReminderTone, &settings.ThirdReminderTone},
	} {
		if tone.in == nil {
			continue
		}
		t := dbm.ReminderTone(*tone.in)
		if !dbm.ValidReminderTone(t) {
			return nil, utils.ErrInvalidTone
		}
		*tone.out = t
	}

	if err := s.settingsRepo.SaveReminderSettings(ctx, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (s *SettingsService) GetAccountSettings(ctx context.Context, userID uuid.UUID) (*dbm.AccountSettings, error) {
	settings, err := s.settingsRepo.GetOrCreateAccountSettings(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}

func (s *SettingsService) UpdateAccountSettings(ctx context.Context, userID uuid.UUID, req request_models.UpdateAccountSettingsRequest) (*dbm.AccountSettings, error) {
	settings, err := s.settingsRepo.GetOrCreateAccountSettings(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if req.BusinessName != nil {
		settings.BusinessName = *req.BusinessName
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.SenderName != nil {
		settings.SenderName = *req.SenderName
	}
	if req.SenderEmail != nil {
		settings.SenderEmail = *req.SenderEmail
	}

	if err := s.settingsRepo.SaveAccountSettings(ctx, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return settings, nil
}
