package response_models

import (
	"time"

	"github.com/google/uuid"
)

type ReminderResponse struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Sequence  int       `json:"sequence"`
	Tone      string    `json:"tone"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsHTML    bool      `json:"is_html"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	ClickedAt   *time.Time `json:"clicked_at,omitempty"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`
	BouncedAt   *time.Time `json:"bounced_at,omitempty"`
}

type BulkSendItemResult struct {
	InvoiceID string `json:"invoice_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Sequence  int    `json:"sequence,omitempty"`
}

type BulkSendSummary struct {
	Total   int                  `json:"total"`
	Sent    int                  `json:"sent"`
	Failed  int                  `json:"failed"`
	Results []BulkSendItemResult `json:"results"`
}

type BatchRunSummary struct {
	OwnersProcessed   int `json:"owners_processed"`
	InvoicesEvaluated int `json:"invoices_evaluated"`
	RemindersSent     int `json:"reminders_sent"`
	Failures          int `json:"failures"`
}
