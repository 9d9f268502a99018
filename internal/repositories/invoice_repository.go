package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *dbm.Invoice) error
	GetByID(ctx context.Context, invoiceID, userID uuid.UUID) (*dbm.Invoice, error)
	Update(ctx context.Context, invoice *dbm.Invoice) error
	Delete(ctx context.Context, invoiceID, userID uuid.UUID) (bool, error)
	ListByStatus(ctx context.Context, userID uuid.UUID, status string, now time.Time) ([]dbm.Invoice, error)
	ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Invoice, error)
	IsNumberTaken(ctx context.Context, userID uuid.UUID, number string, excludeID uuid.UUID) (bool, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *dbm.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, invoiceID, userID uuid.UUID) (*dbm.Invoice, error) {
	var invoice dbm.Invoice
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", invoiceID, userID).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *dbm.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete hard deletes the invoice and its reminder history, ownership
// checked. Returns false when nothing matched.
func (r *invoiceRepository) Delete(ctx context.Context, invoiceID, userID uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("id = ? AND user_id = ?", invoiceID, userID).
			Delete(&dbm.Invoice{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Unscoped().
			Where("invoice_id = ? AND user_id = ?", invoiceID, userID).
			Delete(&dbm.InvoiceReminder{}).Error
	})
	return deleted, err
}

// ListByStatus filters by stored status, except "overdue" which is the
// derived state: stored pending with a past due date. "all" returns
// everything.
func (r *invoiceRepository) ListByStatus(ctx context.Context, userID uuid.UUID, status string, now time.Time) ([]dbm.Invoice, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	switch status {
	case "", "all":
	case "overdue":
		q = q.Where("status = ? AND due_date < ?", dbm.InvoiceStatusPending, now)
	default:
		q = q.Where("status = ?", status)
	}

	var invoices []dbm.Invoice
	err := q.Order("due_date ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Invoice, error) {
	var invoices []dbm.Invoice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, dbm.InvoiceStatusPending).
		Order("due_date ASC").
		Find(&invoices).Error
	return invoices, err
}

// IsNumberTaken checks per-owner invoice-number uniqueness. excludeID
// skips the invoice's own row so editing without changing the number
// is not a false positive.
func (r *invoiceRepository) IsNumberTaken(ctx context.Context, userID uuid.UUID, number string, excludeID uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&dbm.Invoice{}).
		Where("user_id = ? AND invoice_number = ?", userID, number)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
