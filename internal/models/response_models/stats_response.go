package response_models

// DashboardStats degrades to zeroed values when the underlying reads
// fail, so the dashboard stays renderable.
type DashboardStats struct {
	TotalInvoices   int64 `json:"total_invoices"`
	PendingInvoices int64 `json:"pending_invoices"`
	PaidInvoices    int64 `json:"paid_invoices"`
	OverdueInvoices int64 `json:"overdue_invoices"`
	DraftInvoices   int64 `json:"draft_invoices"`

	// Sum of pending + partially paid amounts, exact decimal string.
	OutstandingAmount string `json:"outstanding_amount"`
	PaidAmount        string `json:"paid_amount"`

	RemindersSentLast30Days int64 `json:"reminders_sent_last_30_days"`
}
