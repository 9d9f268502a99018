package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "invoicemanager/internal/models/db_models"
)

type ReminderRepository interface {
	ListByInvoice(ctx context.Context, invoiceID, userID uuid.UUID) ([]dbm.InvoiceReminder, error)
	LastByInvoice(ctx context.Context, invoiceID, userID uuid.UUID) (*dbm.InvoiceReminder, error)

	// AppendAndDispatch runs the read-count, insert, dispatch steps in
	// one transaction. The reminder's Sequence is assigned inside the
	// transaction as count+1 under a row lock on the invoice, and a
	// dispatch failure rolls the insert back.
	AppendAndDispatch(ctx context.Context, reminder *dbm.InvoiceReminder, dispatch func(*dbm.InvoiceReminder) error) error

	UpdateDeliveryStatus(ctx context.Context, reminderID, userID uuid.UUID, status dbm.DeliveryStatus, now time.Time) (*dbm.InvoiceReminder, error)
	CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) ListByInvoice(ctx context.Context, invoiceID, userID uuid.UUID) ([]dbm.InvoiceReminder, error) {
	var reminders []dbm.InvoiceReminder
	err := r.db.WithContext(ctx).
		Where("invoice_id = ? AND user_id = ?", invoiceID, userID).
		Order("sequence DESC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) LastByInvoice(ctx context.Context, invoiceID, userID uuid.UUID) (*dbm.InvoiceReminder, error) {
	var reminder dbm.InvoiceReminder
	err := r.db.WithContext(ctx).
		Where("invoice_id = ? AND user_id = ?", invoiceID, userID).
		Order("sequence DESC").
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) AppendAndDispatch(ctx context.Context, reminder *dbm.InvoiceReminder, dispatch func(*dbm.InvoiceReminder) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent sends for one invoice on postgres;
		// sqlite transactions are already exclusive writers.
		locked := tx
		if tx.Dialector.Name() == "postgres" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var invoice dbm.Invoice
		if err := locked.
			Where("id = ? AND user_id = ?", reminder.InvoiceID, reminder.UserID).
			First(&invoice).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&dbm.InvoiceReminder{}).
			Where("invoice_id = ?", reminder.InvoiceID).
			Count(&count).Error; err != nil {
			return err
		}
		reminder.Sequence = int(count) + 1

		if err := tx.Create(reminder).Error; err != nil {
			return err
		}

		if dispatch != nil {
			if err := dispatch(reminder); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *reminderRepository) UpdateDeliveryStatus(ctx context.Context, reminderID, userID uuid.UUID, status dbm.DeliveryStatus, now time.Time) (*dbm.InvoiceReminder, error) {
	var reminder dbm.InvoiceReminder
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	reminder.Status = status
	switch status {
	case dbm.DeliveryDelivered:
		reminder.DeliveredAt = &now
	case dbm.DeliveryOpened:
		reminder.OpenedAt = &now
	case dbm.DeliveryClicked:
		reminder.ClickedAt = &now
	case dbm.DeliveryReplied:
		reminder.RepliedAt = &now
	case dbm.DeliveryBounced:
		reminder.BouncedAt = &now
	}

	if err := r.db.WithContext(ctx).Save(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) CountSentSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.InvoiceReminder{}).
		Where("user_id = ? AND sent_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
