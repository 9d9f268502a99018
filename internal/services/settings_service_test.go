package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

func TestReminderSettingsLazyDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(repositories.NewSettingsRepository(db))
	userID := uuid.New()

	settings, err := svc.GetReminderSettings(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !settings.IsAutomatedReminders {
		t.Fatalf("automation should default on")
	}
	if settings.FirstReminderDays != 3 || settings.FollowUpFrequency != 7 || settings.MaxReminders != 3 {
		t.Fatalf("unexpected cadence defaults: %+v", settings)
	}
	if settings.FirstReminderTone != dbm.TonePolite ||
		settings.SecondReminderTone != dbm.ToneFirm ||
		settings.ThirdReminderTone != dbm.ToneUrgent {
		t.Fatalf("unexpected tone defaults: %+v", settings)
	}

	// Second read returns the same row, not a new one.
	again, err := svc.GetReminderSettings(context.Background(), userID)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatalf("expected same settings row")
	}
}

func TestUpdateReminderSettingsPartialMerge(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(repositories.NewSettingsRepository(db))
	userID := uuid.New()
	ctx := context.Background()

	off := false
	freq := 14
	updated, err := svc.UpdateReminderSettings(ctx, userID, request_models.UpdateReminderSettingsRequest{
		IsAutomatedReminders: &off,
		FollowUpFrequency:    &freq,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsAutomatedReminders {
		t.Fatalf("automation should be off")
	}
	if updated.FollowUpFrequency != 14 {
		t.Fatalf("follow-up frequency not updated: %d", updated.FollowUpFrequency)
	}
	// Untouched fields keep their defaults.
	if updated.FirstReminderDays != 3 || updated.MaxReminders != 3 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	bad := "menacing"
	if _, err := svc.UpdateReminderSettings(ctx, userID, request_models.UpdateReminderSettingsRequest{
		SecondReminderTone: &bad,
	}); !errors.Is(err, utils.ErrInvalidTone) {
		t.Fatalf("expected ErrInvalidTone, got %v", err)
	}
}

func TestAccountSettingsSenderGate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(repositories.NewSettingsRepository(db))
	userID := uuid.New()
	ctx := context.Background()

	settings, err := svc.GetAccountSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.HasSender() {
		t.Fatalf("fresh settings should have no sender")
	}

	name := "Acme Billing"
	email := "billing@acme.test"
	updated, err := svc.UpdateAccountSettings(ctx, userID, request_models.UpdateAccountSettingsRequest{
		SenderName:  &name,
		SenderEmail: &email,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.HasSender() {
		t.Fatalf("sender should be configured")
	}
	if updated.SenderName != name || updated.SenderEmail != email {
		t.Fatalf("sender fields not persisted: %+v", updated)
	}
}

func TestListAutomationEnabledFiltersDisabledOwners(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewSettingsRepository(db)
	ctx := context.Background()

	enabled := uuid.New()
	disabled := uuid.New()
	if _, err := repo.GetOrCreateReminderSettings(ctx, enabled); err != nil {
		t.Fatalf("create enabled: %v", err)
	}
	settings, err := repo.GetOrCreateReminderSettings(ctx, disabled)
	if err != nil {
		t.Fatalf("create disabled: %v", err)
	}
	settings.IsAutomatedReminders = false
	if err := repo.SaveReminderSettings(ctx, settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	owners, err := repo.ListAutomationEnabled(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owners) != 1 || owners[0].UserID != enabled {
		t.Fatalf("expected only the enabled owner, got %+v", owners)
	}
}
