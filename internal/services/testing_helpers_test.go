package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"invoicemanager/internal/infra"
	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fakeMailService struct {
	sent []OutboundMail
	fail bool
}

func (f *fakeMailService) Send(mail OutboundMail) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.sent = append(f.sent, mail)
	return nil
}

func newTestReminderService(db *gorm.DB, mail MailServiceInterface, now func() time.Time) *ReminderService {
	svc := NewReminderService(
		repositories.NewInvoiceRepository(db),
		repositories.NewReminderRepository(db),
		repositories.NewSettingsRepository(db),
		repositories.NewTemplateRepository(db),
		mail,
	).(*ReminderService)
	if now != nil {
		svc.now = now
	}
	return svc
}

func seedSender(t *testing.T, db *gorm.DB, userID uuid.UUID) {
	t.Helper()
	settings := dbm.AccountSettings{
		UserID:      userID,
		SenderName:  "Acme Billing",
		SenderEmail: "billing@acme.test",
	}
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("seed sender: %v", err)
	}
}

func seedInvoice(t *testing.T, db *gorm.DB, userID uuid.UUID, number string, due time.Time, status dbm.InvoiceStatus) *dbm.Invoice {
	t.Helper()
	invoice := dbm.Invoice{
		UserID:        userID,
		ClientName:    "Client Co",
		ClientEmail:   "client@example.com",
		InvoiceNumber: number,
		Amount:        "1250.00",
		Currency:      "USD",
		IssueDate:     due.AddDate(0, 0, -14),
		DueDate:       due,
		Status:        status,
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice %s: %v", number, err)
	}
	return &invoice
}

func defaultPolicy(userID uuid.UUID) *dbm.ReminderSettings {
	return &dbm.ReminderSettings{
		UserID:               userID,
		IsAutomatedReminders: true,
		FirstReminderDays:    3,
		FollowUpFrequency:    7,
		MaxReminders:         3,
		FirstReminderTone:    dbm.TonePolite,
		SecondReminderTone:   dbm.ToneFirm,
		ThirdReminderTone:    dbm.ToneUrgent,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}
