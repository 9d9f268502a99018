package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

type TemplateServiceInterface interface {
	CreateTemplate(ctx context.Context, userID uuid.UUID, req request_models.CreateTemplateRequest) (*dbm.EmailTemplate, error)
	UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, req request_models.UpdateTemplateRequest) (*dbm.EmailTemplate, error)
	GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*dbm.EmailTemplate, error)
	ListTemplates(ctx context.Context, userID uuid.UUID) ([]dbm.EmailTemplate, error)
	DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error
}

type TemplateService struct {
	templateRepo repositories.TemplateRepository
}

func NewTemplateService(templateRepo repositories.TemplateRepository) TemplateServiceInterface {
	return &TemplateService{templateRepo: templateRepo}
}

func variablesJSON(vars []string) datatypes.JSON {
	if len(vars) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(vars)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func (s *TemplateService) CreateTemplate(ctx context.Context, userID uuid.UUID, req request_models.CreateTemplateRequest) (*dbm.EmailTemplate, error) {
	tone := dbm.ReminderTone(req.Tone)
	if !dbm.ValidReminderTone(tone) {
		return nil, utils.ErrInvalidTone
	}

	category := dbm.CategoryReminder
	if req.Category != "" {
		category = dbm.TemplateCategory(req.Category)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	template := &dbm.EmailTemplate{
		UserID:    userID,
		Name:      req.Name,
		Subject:   req.Subject,
		HTMLBody:  req.HTMLBody,
		TextBody:  req.TextBody,
		Tone:      tone,
		Category:  category,
		IsDefault: req.IsDefault,
		IsActive:  active,
		Variables: variablesJSON(req.Variables),
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return template, nil
}

func (s *TemplateService) UpdateTemplate(ctx context.Context, userID, templateID uuid.UUID, req request_models.UpdateTemplateRequest) (*dbm.EmailTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}

	if req.Tone != nil {
		tone := dbm.ReminderTone(*req.Tone)
		if !dbm.ValidReminderTone(tone) {
			return nil, utils.ErrInvalidTone
		}
		template.Tone = tone
	}
	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.HTMLBody != nil {
		template.HTMLBody = *req.HTMLBody
	}
	if req.TextBody != nil {
		template.TextBody = *req.TextBody
	}
	if req.Category != nil {
		template.Category = dbm.TemplateCategory(*req.Category)
	}
	if req.IsDefault != nil {
		template.IsDefault = *req.IsDefault
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if req.Variables != nil {
		template.Variables = variablesJSON(req.Variables)
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return template, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, userID, templateID uuid.UUID) (*dbm.EmailTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}
	return template, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context, userID uuid.UUID) ([]dbm.EmailTemplate, error) {
	templates, err := s.templateRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return templates, nil
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, userID, templateID uuid.UUID) error {
	deleted, err := s.templateRepo.Delete(ctx, templateID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTemplateNotFound
	}
	return nil
}
