package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	req "invoicemanager/internal/models/request_models"
)

type PdfServiceInterface interface {
	GenerateInvoicePdf(request req.GenerateInvoicePdfRequest) ([]byte, error)
}

type PdfService struct{}

func NewPdfService() PdfServiceInterface {
	return &PdfService{}
}

// GenerateInvoicePdf renders the document entirely from the request
// payload. It never touches stored invoices.
func (s *PdfService) GenerateInvoicePdf(request req.GenerateInvoicePdfRequest) ([]byte, error) {
	currency := strings.ToUpper(request.Currency)
	if currency == "" {
		currency = "USD"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", request.InvoiceNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice number: %s", request.InvoiceNumber))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issue date: %s", request.IssueDate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Due date: %s", request.DueDate))
	pdf.Ln(12)

	writeParty(pdf, "From", request.Sender)
	pdf.Ln(4)
	writeParty(pdf, "Bill to", request.Recipient)
	pdf.Ln(8)

	// Line item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	var total float64
	for _, item := range request.Items {
		lineTotal := item.Quantity * item.UnitPrice
		total += lineTotal
		pdf.CellFormat(90, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, trimQuantity(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", lineTotal), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 10, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("%s %.2f", currency, total), "1", 1, "R", false, 0, "")

	if request.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Notes")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, request.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParty(pdf *gofpdf.Fpdf, label string, party req.PdfParty) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, label)
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, party.Name)
	pdf.Ln(5)
	if party.Email != "" {
		pdf.Cell(0, 5, party.Email)
		pdf.Ln(5)
	}
	if party.Address != "" {
		pdf.MultiCell(0, 5, party.Address, "", "L", false)
	}
}

func trimQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}
