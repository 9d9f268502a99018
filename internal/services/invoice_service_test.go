package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

func newTestInvoiceService(db *gorm.DB, now func() time.Time) *InvoiceService {
	svc := NewInvoiceService(repositories.NewInvoiceRepository(db)).(*InvoiceService)
	if now != nil {
		svc.now = now
	}
	return svc
}

func createRequest(number string) request_models.CreateInvoiceRequest {
	return request_models.CreateInvoiceRequest{
		ClientName:    "Client Co",
		ClientEmail:   "client@example.com",
		InvoiceNumber: number,
		Amount:        "1250.00",
		IssueDate:     "2024-01-01",
		DueDate:       "2024-02-01",
	}
}

func TestCreateInvoiceDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), userID, createRequest("INV-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != "pending" {
		t.Fatalf("expected pending default, got %s", created.Status)
	}
	if created.Currency != "USD" {
		t.Fatalf("expected USD default, got %s", created.Currency)
	}
	if created.Amount != "1250.00" {
		t.Fatalf("amount changed: %s", created.Amount)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	userID := uuid.New()
	ctx := context.Background()

	bad := createRequest("INV-001")
	bad.Amount = "12.345"
	if _, err := svc.CreateInvoice(ctx, userID, bad); !errors.Is(err, utils.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	bad = createRequest("INV-001")
	bad.Amount = "-5.00"
	if _, err := svc.CreateInvoice(ctx, userID, bad); !errors.Is(err, utils.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for negative, got %v", err)
	}

	bad = createRequest("INV-001")
	bad.DueDate = "02/01/2024"
	if _, err := svc.CreateInvoice(ctx, userID, bad); !errors.Is(err, utils.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	bad = createRequest("INV-001")
	bad.Status = "shredded"
	if _, err := svc.CreateInvoice(ctx, userID, bad); !errors.Is(err, utils.ErrInvalidInvoiceStatus) {
		t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
	}
}

func TestInvoiceNumberUniquePerOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := svc.CreateInvoice(ctx, alice, createRequest("INV-001")); err != nil {
		t.Fatalf("alice create: %v", err)
	}
	if _, err := svc.CreateInvoice(ctx, alice, createRequest("INV-001")); !errors.Is(err, utils.ErrDuplicateInvoiceNumber) {
		t.Fatalf("expected ErrDuplicateInvoiceNumber, got %v", err)
	}
	// Same number under a different owner is fine.
	if _, err := svc.CreateInvoice(ctx, bob, createRequest("INV-001")); err != nil {
		t.Fatalf("bob create: %v", err)
	}
}

func TestUpdateInvoiceNumberExcludesOwnRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateInvoice(ctx, userID, createRequest("INV-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateInvoice(ctx, userID, createRequest("INV-002")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Re-submitting its own number is not a conflict.
	same := "INV-001"
	if _, err := svc.UpdateInvoice(ctx, userID, first.ID, request_models.UpdateInvoiceRequest{InvoiceNumber: &same}); err != nil {
		t.Fatalf("same-number update: %v", err)
	}

	// Taking the sibling's number is.
	taken := "INV-002"
	if _, err := svc.UpdateInvoice(ctx, userID, first.ID, request_models.UpdateInvoiceRequest{InvoiceNumber: &taken}); !errors.Is(err, utils.ErrDuplicateInvoiceNumber) {
		t.Fatalf("expected ErrDuplicateInvoiceNumber, got %v", err)
	}
}

func TestListInvoicesDerivedOverdue(t *testing.T) {
	db := setupTestDB(t)
	now := date(2024, time.March, 1)
	svc := newTestInvoiceService(db, func() time.Time { return now })
	userID := uuid.New()

	pastDue := seedInvoice(t, db, userID, "INV-001", date(2024, time.January, 1), dbm.InvoiceStatusPending)
	seedInvoice(t, db, userID, "INV-002", date(2024, time.June, 1), dbm.InvoiceStatusPending)
	seedInvoice(t, db, userID, "INV-003", date(2024, time.January, 1), dbm.InvoiceStatusPaid)

	overdue, err := svc.ListInvoices(context.Background(), userID, "overdue")
	if err != nil {
		t.Fatalf("list overdue: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != pastDue.ID {
		t.Fatalf("expected only the past-due pending invoice, got %+v", overdue)
	}
	// Stored status stays pending; only the display state escalates.
	if overdue[0].Status != "pending" || overdue[0].DisplayStatus != "overdue" {
		t.Fatalf("unexpected statuses: %+v", overdue[0])
	}
	if overdue[0].DaysOverdue != 60 {
		t.Fatalf("expected 60 days overdue, got %d", overdue[0].DaysOverdue)
	}

	if _, err := svc.ListInvoices(context.Background(), userID, "cancelled"); !errors.Is(err, utils.ErrInvalidInvoiceStatus) {
		t.Fatalf("expected ErrInvalidInvoiceStatus for unsupported filter, got %v", err)
	}
}

func TestDeleteInvoiceRemovesHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	userID := uuid.New()
	invoice := seedInvoice(t, db, userID, "INV-001", date(2024, time.January, 1), dbm.InvoiceStatusPending)

	reminder := dbm.InvoiceReminder{
		InvoiceID: invoice.ID,
		UserID:    userID,
		Sequence:  1,
		Tone:      dbm.TonePolite,
		Subject:   "s",
		Body:      "b",
		Status:    dbm.DeliverySent,
		SentAt:    time.Now(),
	}
	if err := db.Create(&reminder).Error; err != nil {
		t.Fatalf("seed reminder: %v", err)
	}

	if err := svc.DeleteInvoice(context.Background(), userID, invoice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Unscoped().Model(&dbm.InvoiceReminder{}).Where("invoice_id = ?", invoice.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected reminder history removed, got %d rows", count)
	}

	if err := svc.DeleteInvoice(context.Background(), userID, invoice.ID); !errors.Is(err, utils.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound on second delete, got %v", err)
	}
}

func TestCheckInvoiceNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateInvoice(ctx, userID, createRequest("INV-001"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	check, err := svc.CheckInvoiceNumber(ctx, userID, "INV-001", uuid.Nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if check.Available {
		t.Fatalf("INV-001 should be taken")
	}

	check, err = svc.CheckInvoiceNumber(ctx, userID, "INV-001", created.ID)
	if err != nil {
		t.Fatalf("check with exclude: %v", err)
	}
	if !check.Available {
		t.Fatalf("INV-001 should be available when excluding its own invoice")
	}
}
