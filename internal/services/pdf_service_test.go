package services

import (
	"bytes"
	"testing"

	req "invoicemanager/internal/models/request_models"
)

func pdfRequest() req.GenerateInvoicePdfRequest {
	return req.GenerateInvoicePdfRequest{
		InvoiceNumber: "INV-001",
		IssueDate:     "2024-01-01",
		DueDate:       "2024-02-01",
		Currency:      "eur",
		Sender: req.PdfParty{
			Name:    "Acme Studio",
			Email:   "billing@acme.test",
			Address: "1 Main Street\nSpringfield",
		},
		Recipient: req.PdfParty{
			Name:  "Client Co",
			Email: "client@example.com",
		},
		Items: []req.PdfLineItem{
			{Description: "Design work", Quantity: 10, UnitPrice: 100},
			{Description: "Hosting", Quantity: 1.5, UnitPrice: 20},
		},
		Notes: "Payable within 30 days.",
	}
}

func TestGenerateInvoicePdf(t *testing.T) {
	svc := NewPdfService()

	out, err := svc.GenerateInvoicePdf(pdfRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a pdf: %q", out[:8])
	}
}

func TestGenerateInvoicePdfWithoutNotes(t *testing.T) {
	svc := NewPdfService()
	request := pdfRequest()
	request.Notes = ""
	request.Currency = ""

	out, err := svc.GenerateInvoicePdf(request)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected pdf bytes")
	}
}
