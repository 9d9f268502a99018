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

func templateRequest(name, tone string, isDefault bool) request_models.CreateTemplateRequest {
	return request_models.CreateTemplateRequest{
		Name:      name,
		Subject:   "About {invoice_number}",
		TextBody:  "Hi {client_name}",
		Tone:      tone,
		IsDefault: isDefault,
		Variables: []string{"invoice_number", "client_name"},
	}
}

func TestCreateTemplateUnsetsSiblingDefault(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTemplateRepository(db)
	svc := NewTemplateService(repo)
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.CreateTemplate(ctx, userID, templateRequest("First polite", "polite", true))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreateTemplate(ctx, userID, templateRequest("Second polite", "polite", true))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	def, err := repo.DefaultForTone(ctx, userID, dbm.TonePolite)
	if err != nil {
		t.Fatalf("default lookup: %v", err)
	}
	if def == nil || def.ID != second.ID {
		t.Fatalf("expected second template to be default, got %+v", def)
	}

	reloaded, err := svc.GetTemplate(ctx, userID, first.ID)
	if err != nil {
		t.Fatalf("reload first: %v", err)
	}
	if reloaded.IsDefault {
		t.Fatalf("first template should no longer be default")
	}
}

func TestDefaultsIndependentAcrossTones(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTemplateRepository(db)
	svc := NewTemplateService(repo)
	userID := uuid.New()
	ctx := context.Background()

	polite, err := svc.CreateTemplate(ctx, userID, templateRequest("Polite", "polite", true))
	if err != nil {
		t.Fatalf("create polite: %v", err)
	}
	if _, err := svc.CreateTemplate(ctx, userID, templateRequest("Firm", "firm", true)); err != nil {
		t.Fatalf("create firm: %v", err)
	}

	def, err := repo.DefaultForTone(ctx, userID, dbm.TonePolite)
	if err != nil {
		t.Fatalf("default lookup: %v", err)
	}
	if def == nil || def.ID != polite.ID {
		t.Fatalf("firm default should not displace the polite default")
	}
}

func TestInactiveDefaultIsIgnoredForRendering(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTemplateRepository(db)
	svc := NewTemplateService(repo)
	userID := uuid.New()
	ctx := context.Background()

	created, err := svc.CreateTemplate(ctx, userID, templateRequest("Polite", "polite", true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inactive := false
	if _, err := svc.UpdateTemplate(ctx, userID, created.ID, request_models.UpdateTemplateRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	def, err := repo.DefaultForTone(ctx, userID, dbm.TonePolite)
	if err != nil {
		t.Fatalf("default lookup: %v", err)
	}
	if def != nil {
		t.Fatalf("inactive template should not be returned, got %+v", def)
	}
}

func TestTemplateValidationAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTemplateRepository(db)
	svc := NewTemplateService(repo)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	if _, err := svc.CreateTemplate(ctx, owner, templateRequest("Bad", "shouty", false)); !errors.Is(err, utils.ErrInvalidTone) {
		t.Fatalf("expected ErrInvalidTone, got %v", err)
	}

	created, err := svc.CreateTemplate(ctx, owner, templateRequest("Mine", "polite", false))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetTemplate(ctx, other, created.ID); !errors.Is(err, utils.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound for other user, got %v", err)
	}
	if err := svc.DeleteTemplate(ctx, other, created.ID); !errors.Is(err, utils.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound on foreign delete, got %v", err)
	}
	if err := svc.DeleteTemplate(ctx, owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
