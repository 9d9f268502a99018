package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "invoicemanager/internal/models/db_models"
	"invoicemanager/pkg/utils"
)

type RenderedReminder struct {
	Subject string
	Body    string
	IsHTML  bool
}

// Built-in tone templates used when the owner has no active default
// override for the tone. Placeholders are substituted from the
// invoice at render time.
var builtinToneTemplates = map[dbm.ReminderTone]struct {
	Subject string
	Body    string
}{
	dbm.TonePolite: {
		Subject: "Friendly reminder: invoice {invoice_number}",
		Body: "Hi {client_name},\n\n" +
			"Just a friendly reminder that invoice {invoice_number} for {amount} was due on {due_date}. " +
			"If you've already sent payment, please disregard this note.\n\n" +
			"Thank you!",
	},
	dbm.ToneFirm: {
		Subject: "Payment overdue: invoice {invoice_number}",
		Body: "Hello {client_name},\n\n" +
			"Invoice {invoice_number} for {amount} is now {days_overdue} days past its due date of {due_date}. " +
			"Please arrange payment at your earliest convenience.\n\n" +
			"Regards,",
	},
	dbm.ToneUrgent: {
		Subject: "URGENT: invoice {invoice_number} requires immediate attention",
		Body: "Dear {client_name},\n\n" +
			"Despite previous reminders, invoice {invoice_number} for {amount} remains unpaid, " +
			"{days_overdue} days past the due date of {due_date}. " +
			"Please settle this invoice immediately to avoid further action.\n\n" +
			"Regards,",
	},
}

func substitutePlaceholders(text string, invoice *dbm.Invoice, now time.Time) string {
	replacer := strings.NewReplacer(
		"{client_name}", invoice.ClientName,
		"{invoice_number}", invoice.InvoiceNumber,
		"{amount}", invoice.Amount+" "+invoice.Currency,
		"{currency}", invoice.Currency,
		"{due_date}", utils.FormatDate(invoice.DueDate),
		"{days_overdue}", strconv.Itoa(utils.DaysOverdue(now, invoice.DueDate)),
	)
	return replacer.Replace(text)
}

// renderForTone prefers the owner's active default override for the
// tone and falls back to the built-in template.
func (s *ReminderService) renderForTone(ctx context.Context, userID uuid.UUID, tone dbm.ReminderTone, invoice *dbm.Invoice, now time.Time) (*RenderedReminder, error) {
	custom, err := s.templateRepo.DefaultForTone(ctx, userID, tone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if custom != nil {
		body, isHTML := custom.TextBody, false
		if custom.HTMLBody != "" {
			body, isHTML = custom.HTMLBody, true
		}
		return &RenderedReminder{
			Subject: substitutePlaceholders(custom.Subject, invoice, now),
			Body:    substitutePlaceholders(body, invoice, now),
			IsHTML:  isHTML,
		}, nil
	}

	builtin, ok := builtinToneTemplates[tone]
	if !ok {
		builtin = builtinToneTemplates[dbm.TonePolite]
	}
	return &RenderedReminder{
		Subject: substitutePlaceholders(builtin.Subject, invoice, now),
		Body:    substitutePlaceholders(builtin.Body, invoice, now),
	}, nil
}
