package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/internal/models/request_models"
	resp "invoicemanager/internal/models/response_models"
	"invoicemanager/internal/repositories"
	"invoicemanager/pkg/utils"
)

// Decision is the scheduler's verdict for one invoice.
type Decision struct {
	Send     bool
	Sequence int
	Tone     dbm.ReminderTone
}

type ReminderServiceInterface interface {
	SendReminder(ctx context.Context, userID uuid.UUID, req request_models.SendReminderRequest) (*resp.ReminderResponse, error)
	BulkSendReminders(ctx context.Context, userID uuid.UUID, req request_models.BulkSendRemindersRequest) (*resp.BulkSendSummary, error)
	GetReminderHistory(ctx context.Context, userID, invoiceID uuid.UUID) ([]resp.ReminderResponse, error)
	GetLastReminder(ctx context.Context, userID, invoiceID uuid.UUID) (*resp.ReminderResponse, error)
	UpdateDeliveryStatus(ctx context.Context, userID, reminderID uuid.UUID, status string) (*resp.ReminderResponse, error)
	ProcessScheduledReminders(ctx context.Context) (*resp.BatchRunSummary, error)
}

type ReminderService struct {
	invoiceRepo  repositories.InvoiceRepository
	reminderRepo repositories.ReminderRepository
	settingsRepo repositories.SettingsRepository
	templateRepo repositories.TemplateRepository
	mailService  MailServiceInterface
	now          func() time.Time
}

func NewReminderService(
	invoiceRepo repositories.InvoiceRepository,
	reminderRepo repositories.ReminderRepository,
	settingsRepo repositories.SettingsRepository,
	templateRepo repositories.TemplateRepository,
	mailService MailServiceInterface,
) ReminderServiceInterface {
	return &ReminderService{
		invoiceRepo:  invoiceRepo,
		reminderRepo: reminderRepo,
		settingsRepo: settingsRepo,
		templateRepo: templateRepo,
		mailService:  mailService,
		now:          time.Now,
	}
}

// EvaluateInvoice decides whether a reminder is due for one invoice.
// Only stored-status pending invoices are ever evaluated; everything
// else is skipped regardless of policy.
//
// With no history, the first reminder is due once the invoice is past
// due (firstReminderDays >= 0), or |firstReminderDays| days past due
// when the policy is negative. With history, follow-ups fire every
// followUpFrequency days until maxReminders is reached, after which
// the invoice is skipped permanently until its status changes.
func EvaluateInvoice(invoice *dbm.Invoice, settings *dbm.ReminderSettings, history []dbm.InvoiceReminder, now time.Time) Decision {
	if invoice.Status != dbm.InvoiceStatusPending {
		return Decision{}
	}

	daysOverdue := utils.DaysOverdue(now, invoice.DueDate)

	if len(history) == 0 {
		due := false
		if settings.FirstReminderDays >= 0 {
			due = daysOverdue >= 0
		} else {
			due = daysOverdue >= -settings.FirstReminderDays
		}
		if !due {
			return Decision{}
		}
		return Decision{Send: true, Sequence: 1, Tone: settings.FirstReminderTone}
	}

	// history is ordered newest first
	last := history[0]
	if last.Sequence >= settings.MaxReminders {
		return Decision{}
	}
	if utils.DaysSince(now, last.SentAt) < settings.FollowUpFrequency {
		return Decision{}
	}

	next := last.Sequence + 1
	return Decision{Send: true, Sequence: next, Tone: settings.ToneForSequence(next)}
}

func (s *ReminderService) SendReminder(ctx context.Context, userID uuid.UUID, req request_models.SendReminderRequest) (*resp.ReminderResponse, error) {
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return nil, utils.ErrInvoiceNotFound
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	accountSettings, err := s.settingsRepo.GetOrCreateAccountSettings(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !accountSettings.HasSender() {
		return nil, utils.ErrNoSenderConfigured
	}

	tone := dbm.ReminderTone(req.Tone)
	if req.Tone == "" {
		tone = dbm.TonePolite
	}
	if !dbm.ValidReminderTone(tone) {
		return nil, utils.ErrInvalidTone
	}

	now := s.now()
	subject, body := req.Subject, req.Body
	isHTML := req.IsHTML
	if subject == "" || body == "" {
		rendered, err := s.renderForTone(ctx, userID, tone, invoice, now)
		if err != nil {
			return nil, err
		}
		if subject == "" {
			subject = rendered.Subject
		}
		if body == "" {
			body = rendered.Body
			isHTML = rendered.IsHTML
		}
	}

	reminder := &dbm.InvoiceReminder{
		InvoiceID: invoice.ID,
		UserID:    userID,
		Tone:      tone,
		Subject:   subject,
		Body:      body,
		IsHTML:    isHTML,
		Status:    dbm.DeliverySent,
		SentAt:    now,
	}

	if err := s.dispatch(ctx, reminder, invoice, accountSettings); err != nil {
		return nil, err
	}

	out := toReminderResponse(reminder)
	return &out, nil
}

// dispatch appends the record and hands the mail to the transport in
// one transaction; a transport failure rolls the record back.
func (s *ReminderService) dispatch(ctx context.Context, reminder *dbm.InvoiceReminder, invoice *dbm.Invoice, sender *dbm.AccountSettings) error {
	err := s.reminderRepo.AppendAndDispatch(ctx, reminder, func(rec *dbm.InvoiceReminder) error {
		mail := OutboundMail{
			To:        invoice.ClientEmail,
			FromEmail: sender.SenderEmail,
			FromName:  sender.SenderName,
			Subject:   rec.Subject,
		}
		if rec.IsHTML {
			mail.HTMLBody = rec.Body
		} else {
			mail.TextBody = rec.Body
		}
		if err := s.mailService.Send(mail); err != nil {
			log.Printf("reminder dispatch failed for invoice %s: %v", invoice.ID, err)
			return utils.ErrMailDelivery
		}
		return nil
	})
	if err == utils.ErrMailDelivery {
		return err
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReminderService) BulkSendReminders(ctx context.Context, userID uuid.UUID, req request_models.BulkSendRemindersRequest) (*resp.BulkSendSummary, error) {
	summary := &resp.BulkSendSummary{Total: len(req.Reminders)}

	for _, item := range req.Reminders {
		sent, err := s.SendReminder(ctx, userID, item)
		result := resp.BulkSendItemResult{InvoiceID: item.InvoiceID}
		if err != nil {
			result.Error = err.Error()
			summary.Failed++
		} else {
			result.Success = true
			result.Sequence = sent.Sequence
			summary.Sent++
		}
		summary.Results = append(summary.Results, result)
	}

	return summary, nil
}

func (s *ReminderService) GetReminderHistory(ctx context.Context, userID, invoiceID uuid.UUID) ([]resp.ReminderResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	history, err := s.reminderRepo.ListByInvoice(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.ReminderResponse, 0, len(history))
	for _, rec := range history {
		out = append(out, toReminderResponse(&rec))
	}
	return out, nil
}

func (s *ReminderService) GetLastReminder(ctx context.Context, userID, invoiceID uuid.UUID) (*resp.ReminderResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invoice == nil {
		return nil, utils.ErrInvoiceNotFound
	}

	last, err := s.reminderRepo.LastByInvoice(ctx, invoiceID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if last == nil {
		return nil, nil
	}
	out := toReminderResponse(last)
	return &out, nil
}

func (s *ReminderService) UpdateDeliveryStatus(ctx context.Context, userID, reminderID uuid.UUID, status string) (*resp.ReminderResponse, error) {
	ds := dbm.DeliveryStatus(status)
	if !dbm.ValidDeliveryStatus(ds) {
		return nil, utils.ErrInvalidDeliveryStatus
	}

	updated, err := s.reminderRepo.UpdateDeliveryStatus(ctx, reminderID, userID, ds, s.now())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrReminderNotFound
	}
	out := toReminderResponse(updated)
	return &out, nil
}

// ProcessScheduledReminders walks every owner with automation enabled
// and applies the per-invoice decision. Failures are counted and the
// loop moves on; nothing already sent is rolled back.
func (s *ReminderService) ProcessScheduledReminders(ctx context.Context) (*resp.BatchRunSummary, error) {
	owners, err := s.settingsRepo.ListAutomationEnabled(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := &resp.BatchRunSummary{}
	for _, settings := range owners {
		summary.OwnersProcessed++

		accountSettings, err := s.settingsRepo.GetOrCreateAccountSettings(ctx, settings.UserID)
		if err != nil || !accountSettings.HasSender() {
			if err != nil {
				log.Printf("scheduled reminders: settings read failed for user %s: %v", settings.UserID, err)
			}
			continue
		}

		invoices, err := s.invoiceRepo.ListPendingByUser(ctx, settings.UserID)
		if err != nil {
			log.Printf("scheduled reminders: invoice list failed for user %s: %v", settings.UserID, err)
			summary.Failures++
			continue
		}

		for i := range invoices {
			invoice := &invoices[i]
			summary.InvoicesEvaluated++

			history, err := s.reminderRepo.ListByInvoice(ctx, invoice.ID, settings.UserID)
			if err != nil {
				summary.Failures++
				continue
			}

			now := s.now()
			decision := EvaluateInvoice(invoice, &settings, history, now)
			if !decision.Send {
				continue
			}

			rendered, err := s.renderForTone(ctx, settings.UserID, decision.Tone, invoice, now)
			if err != nil {
				summary.Failures++
				continue
			}

			reminder := &dbm.InvoiceReminder{
				InvoiceID: invoice.ID,
				UserID:    settings.UserID,
				Tone:      decision.Tone,
				Subject:   rendered.Subject,
				Body:      rendered.Body,
				IsHTML:    rendered.IsHTML,
				Status:    dbm.DeliverySent,
				SentAt:    now,
			}
			if err := s.dispatch(ctx, reminder, invoice, accountSettings); err != nil {
				log.Printf("scheduled reminders: send failed for invoice %s: %v", invoice.ID, err)
				summary.Failures++
				continue
			}
			summary.RemindersSent++
		}
	}

	return summary, nil
}

func toReminderResponse(rec *dbm.InvoiceReminder) resp.ReminderResponse {
	return resp.ReminderResponse{
		ID:          rec.ID,
		InvoiceID:   rec.InvoiceID,
		Sequence:    rec.Sequence,
		Tone:        string(rec.Tone),
		Subject:     rec.Subject,
		Body:        rec.Body,
		IsHTML:      rec.IsHTML,
		Status:      string(rec.Status),
		SentAt:      rec.SentAt,
		DeliveredAt: rec.DeliveredAt,
		OpenedAt:    rec.OpenedAt,
		ClickedAt:   rec.ClickedAt,
		RepliedAt:   rec.RepliedAt,
		BouncedAt:   rec.BouncedAt,
	}
}
