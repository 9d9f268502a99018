package response_models

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	// Stored status; pending invoices past due are displayed overdue.
	Status        string `json:"status"`
	DisplayStatus string `json:"display_status"`
	DaysOverdue   int    `json:"days_overdue"`
	Description   string `json:"description,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

type InvoiceNumberCheckResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	Available     bool   `json:"available"`
}
