package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type ReminderController struct {
	reminderService services.ReminderServiceInterface
}

func NewReminderController(reminderService services.ReminderServiceInterface) *ReminderController {
	return &ReminderController{
		reminderService: reminderService,
	}
}

// SendReminder godoc
// @Summary Send a reminder
// @Description Send a reminder email for an invoice. Subject and body default to the tone template when omitted.
// @Tags Reminder
// @Accept json
// @Produce json
// @Param request body request_models.SendReminderRequest true "Reminder data"
// @Success 200 {object} response_models.ReminderResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reminders/send [post]
func (r *ReminderController) SendReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reminder payload")
		return
	}

	reminder, err := r.reminderService.SendReminder(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reminder, "Reminder sent successfully")
}

// BulkSendReminders godoc
// @Summary Send reminders for several invoices
// @Description Send one reminder per invoice id. Failures are reported per invoice without aborting the batch.
// @Tags Reminder
// @Accept json
// @Produce json
// @Param request body request_models.BulkSendRemindersRequest true "Invoice ids and tone"
// @Success 200 {object} response_models.BulkSendSummary
// @Security BearerAuth
// @Router /reminders/bulk-send [post]
func (r *ReminderController) BulkSendReminders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.BulkSendRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Reminders) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one reminder is required")
		return
	}

	summary, err := r.reminderService.BulkSendReminders(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Bulk send completed")
}

// GetReminderHistory godoc
// @Summary Get reminder history
// @Description List all reminders sent for an invoice, newest first
// @Tags Reminder
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {array} response_models.ReminderResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reminders/history/{invoiceId} [get]
func (r *ReminderController) GetReminderHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	history, err := r.reminderService.GetReminderHistory(c.Request.Context(), userID, invoiceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Reminder history fetched successfully")
}

// GetLastReminder godoc
// @Summary Get the last reminder
// @Description Fetch the most recent reminder sent for an invoice, null when none exists
// @Tags Reminder
// @Produce json
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} response_models.ReminderResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reminders/last/{invoiceId} [get]
func (r *ReminderController) GetLastReminder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "invoiceId")
	if !ok {
		return
	}

	reminder, err := r.reminderService.GetLastReminder(c.Request.Context(), userID, invoiceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reminder, "Last reminder fetched successfully")
}

// UpdateDeliveryStatus godoc
// @Summary Update reminder delivery status
// @Description Record a delivery event (delivered, opened, clicked, replied, bounced) for a reminder
// @Tags Reminder
// @Accept json
// @Produce json
// @Param reminderId path string true "Reminder ID"
// @Param request body request_models.UpdateDeliveryStatusRequest true "New delivery status"
// @Success 200 {object} response_models.ReminderResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reminders/{reminderId}/delivery-status [patch]
func (r *ReminderController) UpdateDeliveryStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reminderID, ok := pathUUID(c, "reminderId")
	if !ok {
		return
	}

	var req request_models.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	reminder, err := r.reminderService.UpdateDeliveryStatus(c.Request.Context(), userID, reminderID, req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reminder, "Delivery status updated successfully")
}

// RunScheduledReminders godoc
// @Summary Run the reminder scheduler
// @Description Evaluate every automation-enabled account and send due reminders. Intended for cron invocation.
// @Tags Reminder
// @Produce json
// @Success 200 {object} response_models.BatchRunSummary
// @Security BearerAuth
// @Router /reminders/run-scheduled [post]
func (r *ReminderController) RunScheduledReminders(c *gin.Context) {
	summary, err := r.reminderService.ProcessScheduledReminders(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Scheduled reminders processed")
}
