package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
)

type StatsRepository interface {
	CountInvoices(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, userID uuid.UUID, status dbm.InvoiceStatus) (int64, error)
	CountOverdue(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
	SumAmountByStatuses(ctx context.Context, userID uuid.UUID, statuses []string) (string, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountInvoices(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Invoice{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountByStatus(ctx context.Context, userID uuid.UUID, status dbm.InvoiceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Invoice{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountOverdue(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Invoice{}).
		Where("user_id = ? AND status = ? AND due_date < ?", userID, dbm.InvoiceStatusPending, now).
		Count(&count).Error
	return count, err
}

// SumAmountByStatuses sums the exact decimal amounts inside postgres
// to avoid float accumulation. Callers degrade to "0.00" on error.
func (r *statsRepository) SumAmountByStatuses(ctx context.Context, userID uuid.UUID, statuses []string) (string, error) {
	var total string
	err := r.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount::numeric), 0)::text
		   FROM invoices
		  WHERE user_id = ? AND status = ANY(?::text[]) AND deleted_at IS NULL`,
		userID, pq.Array(statuses),
	).Scan(&total).Error
	if err != nil {
		return "", err
	}
	if total == "" {
		total = "0"
	}
	return total, nil
}
