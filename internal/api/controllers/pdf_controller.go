package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type PdfController struct {
	pdfService services.PdfServiceInterface
}

func NewPdfController(pdfService services.PdfServiceInterface) *PdfController {
	return &PdfController{
		pdfService: pdfService,
	}
}

// GenerateInvoicePdf godoc
// @Summary Generate an invoice PDF
// @Description Render a PDF from the supplied invoice data. The document is built entirely from the request and nothing is stored.
// @Tags Pdf
// @Accept json
// @Produce application/pdf
// @Param request body request_models.GenerateInvoicePdfRequest true "Invoice document"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pdf/invoice [post]
func (p *PdfController) GenerateInvoicePdf(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req request_models.GenerateInvoicePdfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invoice document")
		return
	}

	pdfBytes, err := p.pdfService.GenerateInvoicePdf(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", req.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
