package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *dbm.EmailTemplate) error
	Update(ctx context.Context, template *dbm.EmailTemplate) error
	GetByID(ctx context.Context, templateID, userID uuid.UUID) (*dbm.EmailTemplate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.EmailTemplate, error)
	Delete(ctx context.Context, templateID, userID uuid.UUID) (bool, error)
	DefaultForTone(ctx context.Context, userID uuid.UUID, tone dbm.ReminderTone) (*dbm.EmailTemplate, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// Create inserts the template; when it is the default for its tone,
// sibling defaults of the same owner and tone are unset in the same
// transaction.
func (r *templateRepository) Create(ctx context.Context, template *dbm.EmailTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if template.IsDefault {
			if err := unsetSiblingDefaults(tx, template.UserID, template.Tone, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(template).Error
	})
}

func (r *templateRepository) Update(ctx context.Context, template *dbm.EmailTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if template.IsDefault {
			if err := unsetSiblingDefaults(tx, template.UserID, template.Tone, template.ID); err != nil {
				return err
			}
		}
		return tx.Save(template).Error
	})
}

func unsetSiblingDefaults(tx *gorm.DB, userID uuid.UUID, tone dbm.ReminderTone, exceptID uuid.UUID) error {
	q := tx.Model(&dbm.EmailTemplate{}).
		Where("user_id = ? AND tone = ? AND is_default = ?", userID, tone, true)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_default", false).Error
}

func (r *templateRepository) GetByID(ctx context.Context, templateID, userID uuid.UUID) (*dbm.EmailTemplate, error) {
	var template dbm.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", templateID, userID).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.EmailTemplate, error) {
	var templates []dbm.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepository) Delete(ctx context.Context, templateID, userID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", templateID, userID).
		Delete(&dbm.EmailTemplate{})
	return res.RowsAffected > 0, res.Error
}

// DefaultForTone returns the owner's active default override for the
// tone, or nil when the built-in template should be used.
func (r *templateRepository) DefaultForTone(ctx context.Context, userID uuid.UUID, tone dbm.ReminderTone) (*dbm.EmailTemplate, error) {
	var template dbm.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tone = ? AND is_default = ? AND is_active = ?", userID, tone, true, true).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}
