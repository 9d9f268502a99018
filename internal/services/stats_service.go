package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	resp "invoicemanager/internal/models/response_models"
	"invoicemanager/internal/repositories"
)

type StatsServiceInterface interface {
	GetDashboardStats(ctx context.Context, userID uuid.UUID) *resp.DashboardStats
}

type StatsService struct {
	statsRepo    repositories.StatsRepository
	reminderRepo repositories.ReminderRepository
	now          func() time.Time
}

func NewStatsService(statsRepo repositories.StatsRepository, reminderRepo repositories.ReminderRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo, reminderRepo: reminderRepo, now: time.Now}
}

// GetDashboardStats never fails: each read that errors is logged and
// reported as zero so the dashboard always renders.
func (s *StatsService) GetDashboardStats(ctx context.Context, userID uuid.UUID) *resp.DashboardStats {
	now := s.now()
	stats := &resp.DashboardStats{
		OutstandingAmount: "0.00",
		PaidAmount:        "0.00",
	}

	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			log.Printf("dashboard stats: %s failed for user %s: %v", name, userID, err)
			return 0
		}
		return n
	}

	stats.TotalInvoices = count("total", func() (int64, error) {
		return s.statsRepo.CountInvoices(ctx, userID)
	})
	stats.PendingInvoices = count("pending", func() (int64, error) {
		return s.statsRepo.CountByStatus(ctx, userID, dbm.InvoiceStatusPending)
	})
	stats.PaidInvoices = count("paid", func() (int64, error) {
		return s.statsRepo.CountByStatus(ctx, userID, dbm.InvoiceStatusPaid)
	})
	stats.DraftInvoices = count("draft", func() (int64, error) {
		return s.statsRepo.CountByStatus(ctx, userID, dbm.InvoiceStatusDraft)
	})
	stats.OverdueInvoices = count("overdue", func() (int64, error) {
		return s.statsRepo.CountOverdue(ctx, userID, now)
	})
	stats.RemindersSentLast30Days = count("reminders", func() (int64, error) {
		return s.reminderRepo.CountSentSince(ctx, userID, now.AddDate(0, 0, -30))
	})

	if sum, err := s.statsRepo.SumAmountByStatuses(ctx, userID, []string{
		string(dbm.InvoiceStatusPending),
		string(dbm.InvoiceStatusPartiallyPaid),
	}); err == nil {
		stats.OutstandingAmount = sum
	} else {
		log.Printf("dashboard stats: outstanding sum failed for user %s: %v", userID, err)
	}

	if sum, err := s.statsRepo.SumAmountByStatuses(ctx, userID, []string{
		string(dbm.InvoiceStatusPaid),
	}); err == nil {
		stats.PaidAmount = sum
	} else {
		log.Printf("dashboard stats: paid sum failed for user %s: %v", userID, err)
	}

	return stats
}
