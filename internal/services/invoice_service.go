package services

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	resp "invoicemanager/internal/models/response_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

type InvoiceServiceInterface interface {
	CreateInvoice(ctx context.Context, userID uuid.UUID, req request_models.CreateInvoiceRequest) (*resp.InvoiceResponse, error)
	GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*resp.InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID uuid.UUID, req request_models.UpdateInvoiceRequest) (*resp.InvoiceResponse, error)
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID uuid.UUID, status string) (*resp.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error
	ListInvoices(ctx context.Context, userID uuid.UUID, statusFilter string) ([]resp.InvoiceResponse, error)
	CheckInvoiceNumber(ctx context.Context, userID uuid.UUID, number string, excludeID uuid.UUID) (*resp.InvoiceNumberCheckResponse, error)
}

type InvoiceService struct {
	invoiceRepo repositories.InvoiceRepository
	now         func() time.Time
}

func NewInvoiceService(invoiceRepo repositories.InvoiceRepository) InvoiceServiceInterface {
	return &InvoiceService{invoiceRepo: invoiceRepo, now: time.Now}
}

// Non-negative exact decimal with at most two fraction digits.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, userID uuid.UUID, req request_models.CreateInvoiceRequest) (*resp.InvoiceResponse, error) {
	if !amountPattern.MatchString(req.Amount) {
		return nil, utils.ErrInvalidAmount
	}
	issueDate, ok := parseDate(req.IssueDate)
	if !ok {
		return nil, utils.ErrInvalidDate
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		return nil, utils.ErrInvalidDate
	}

	status := dbm.InvoiceStatusPending
	if req.Status != "" {
		status = dbm.InvoiceStatus(req.Status)
		if !dbm.ValidInvoiceStatus(status) {
			return nil, utils.ErrInvalidInvoiceStatus
		}
	}

	taken, err := s.invoiceRepo.IsNumberTaken(ctx, userID, req.InvoiceNumber, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if taken {
		return nil, utils.ErrDuplicateInvoiceNumber
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice := &dbm.Invoice{
		UserID:        userID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		Currency:      currency,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		Description:   req.Description,
		Notes:         req.Notes,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := s.toResponse(invoice)
	return &out, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, userID, invoiceID uuid.UUID) (*resp.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}
	out := s.toResponse(invoice)
	return &out, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID, invoiceID uuid.UUID, req request_models.UpdateInvoiceRequest) (*resp.InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	if req.InvoiceNumber != nil && *req.InvoiceNumber != invoice.InvoiceNumber {
		taken, err := s.invoiceRepo.IsNumberTaken(ctx, userID, *req.InvoiceNumber, invoice.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if taken {
			return nil, utils.ErrDuplicateInvoiceNumber
		}
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.ClientName != nil {
		invoice.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		invoice.ClientEmail = *req.ClientEmail
	}
	if req.Amount != nil {
		if !amountPattern.MatchString(*req.Amount) {
			return nil, utils.ErrInvalidAmount
		}
		invoice.Amount = *req.Amount
	}
	if req.Currency != nil {
		invoice.Currency = *req.Currency
	}
	if req.IssueDate != nil {
		t, ok := parseDate(*req.IssueDate)
		if !ok {
			return nil, utils.ErrInvalidDate
		}
		invoice.IssueDate = t
	}
	if req.DueDate != nil {
		t, ok := parseDate(*req.DueDate)
		if !ok {
			return nil, utils.ErrInvalidDate
		}
		invoice.DueDate = t
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := s.toResponse(invoice)
	return &out, nil
}

func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID uuid.UUID, status string) (*resp.InvoiceResponse, error) {
	newStatus := dbm.InvoiceStatus(status)
	if !dbm.ValidInvoiceStatus(newStatus) {
		return nil, utils.ErrInvalidInvoiceStatus
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	invoice.Status = newStatus
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := s.toResponse(invoice)
	return &out, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error {
	deleted, err := s.invoiceRepo.Delete(ctx, invoiceID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrInvoiceNotFound
	}
	return nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, statusFilter string) ([]resp.InvoiceResponse, error) {
	switch statusFilter {
	case "", "all", "pending", "paid", "overdue":
	default:
		return nil, utils.ErrInvalidInvoiceStatus
	}

	invoices, err := s.invoiceRepo.ListByStatus(ctx, userID, statusFilter, s.now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, s.toResponse(&invoices[i]))
	}
	return out, nil
}

func (s *InvoiceService) CheckInvoiceNumber(ctx context.Context, userID uuid.UUID, number string, excludeID uuid.UUID) (*resp.InvoiceNumberCheckResponse, error) {
	taken, err := s.invoiceRepo.IsNumberTaken(ctx, userID, number, excludeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &resp.InvoiceNumberCheckResponse{InvoiceNumber: number, Available: !taken}, nil
}

func (s *InvoiceService) toResponse(invoice *dbm.Invoice) resp.InvoiceResponse {
	now := s.now()
	displayStatus := string(invoice.Status)
	if invoice.IsDisplayedOverdue(now) {
		displayStatus = string(dbm.InvoiceStatusOverdue)
	}
	return resp.InvoiceResponse{
		ID:            invoice.ID,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		Currency:      invoice.Currency,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Status:        string(invoice.Status),
		DisplayStatus: displayStatus,
		DaysOverdue:   utils.DaysOverdue(now, invoice.DueDate),
		Description:   invoice.Description,
		Notes:         invoice.Notes,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}
