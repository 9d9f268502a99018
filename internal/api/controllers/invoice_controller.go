package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
	}
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Create a new invoice for the authenticated user
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body request_models.CreateInvoiceRequest true "Invoice data"
// @Success 200 {object} response_models.InvoiceResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices [post]
func (i *InvoiceController) CreateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invoice payload")
		return
	}

	invoice, err := i.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice created successfully")
}

// GetInvoice godoc
// @Summary Get an invoice
// @Description Fetch a single invoice owned by the authenticated user
// @Tags Invoice
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} response_models.InvoiceResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{invoiceId} [get]
func (i *InvoiceController) GetInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	invoice, err := i.invoiceService.GetInvoice(c.Request.Context(), userID, invoiceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice fetched successfully")
}

// ListInvoices godoc
// @Summary List invoices
// @Description List the authenticated user's invoices, optionally filtered by status (pending, paid, overdue)
// @Tags Invoice
// @Produce json
// @Param status query string false "Status filter" Enums(all, pending, paid, overdue)
// @Success 200 {array} response_models.InvoiceResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices [get]
func (i *InvoiceController) ListInvoices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoices, err := i.invoiceService.ListInvoices(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoices, "Invoices fetched successfully")
}

// UpdateInvoice godoc
// @Summary Update an invoice
// @Description Update fields of an invoice owned by the authenticated user
// @Tags Invoice
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param request body request_models.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} response_models.InvoiceResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{invoiceId} [put]
func (i *InvoiceController) UpdateInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	var req request_models.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invoice payload")
		return
	}

	invoice, err := i.invoiceService.UpdateInvoice(c.Request.Context(), userID, invoiceID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice updated successfully")
}

// UpdateInvoiceStatus godoc
// @Summary Update invoice status
// @Description Set the stored status of an invoice (pending, paid, cancelled, draft, partially_paid)
// @Tags Invoice
// @Accept json
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Param request body request_models.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} response_models.InvoiceResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{invoiceId}/status [patch]
func (i *InvoiceController) UpdateInvoiceStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	var req request_models.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	invoice, err := i.invoiceService.UpdateInvoiceStatus(c.Request.Context(), userID, invoiceID, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice status updated successfully")
}

// DeleteInvoice godoc
// @Summary Delete an invoice
// @Description Permanently delete an invoice and its reminder history
// @Tags Invoice
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{invoiceId} [delete]
func (i *InvoiceController) DeleteInvoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	if err := i.invoiceService.DeleteInvoice(c.Request.Context(), userID, invoiceID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invoice deleted successfully")
}

// CheckInvoiceNumber godoc
// @Summary Check invoice number availability
// @Description Check whether an invoice number is already used by the authenticated user
// @Tags Invoice
// @Produce json
// @Param number query string true "Invoice number"
// @Param excludeId query string false "Invoice ID to exclude (when editing)"
// @Success 200 {object} response_models.InvoiceNumberCheckResponse
// @Security BearerAuth
// @Router /invoices/check-number [get]
func (i *InvoiceController) CheckInvoiceNumber(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	number := c.Query("number")
	if number == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invoice number is required")
		return
	}

	excludeID := uuid.Nil
	if raw := c.Query("excludeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid excludeId")
			return
		}
		excludeID = parsed
	}

	result, err := i.invoiceService.CheckInvoiceNumber(c.Request.Context(), userID, number, excludeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Invoice number checked")
}
