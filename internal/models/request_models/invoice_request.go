package request_models

type CreateInvoiceRequest struct {
	ClientName    string `json:"client_name" binding:"required,max=255"`
	ClientEmail   string `json:"client_email" binding:"required,email"`
	InvoiceNumber string `json:"invoice_number" binding:"required,max=50"`
	// Exact decimal string, e.g. "1250.00".
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	IssueDate   string `json:"issue_date" binding:"required"`
	DueDate     string `json:"due_date" binding:"required"`
	Status      string `json:"status" binding:"omitempty"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

type UpdateInvoiceRequest struct {
	ClientName    *string `json:"client_name" binding:"omitempty,max=255"`
	ClientEmail   *string `json:"client_email" binding:"omitempty,email"`
	InvoiceNumber *string `json:"invoice_number" binding:"omitempty,max=50"`
	Amount        *string `json:"amount"`
	Currency      *string `json:"currency" binding:"omitempty,len=3"`
	IssueDate     *string `json:"issue_date"`
	DueDate       *string `json:"due_date"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
