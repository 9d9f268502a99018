package request_models

// GenerateInvoicePdfRequest is the self-contained document rendered to
// PDF. Nothing in it is persisted.
type GenerateInvoicePdfRequest struct {
	InvoiceNumber string `json:"invoice_number" binding:"required,max=50"`
	IssueDate     string `json:"issue_date" binding:"required"`
	DueDate       string `json:"due_date" binding:"required"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`

	Sender    PdfParty `json:"sender" binding:"required"`
	Recipient PdfParty `json:"recipient" binding:"required"`

	Items []PdfLineItem `json:"items" binding:"required,min=1,dive"`

	Notes string `json:"notes" binding:"omitempty,max=2000"`
}

type PdfParty struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

type PdfLineItem struct {
	Description string  `json:"description" binding:"required,max=500"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}
