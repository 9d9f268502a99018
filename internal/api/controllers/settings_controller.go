package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetReminderSettings godoc
// @Summary Get reminder settings
// @Description Fetch the authenticated user's reminder automation settings, creating defaults on first read
// @Tags Settings
// @Produce json
// @Success 200 {object} db_models.ReminderSettings
// @Security BearerAuth
// @Router /settings/reminders [get]
func (s *SettingsController) GetReminderSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := s.settingsService.GetReminderSettings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Reminder settings fetched successfully")
}

// UpdateReminderSettings godoc
// @Summary Update reminder settings
// @Description Update automation cadence and tone mapping for the authenticated user
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateReminderSettingsRequest true "Fields to update"
// @Success 200 {object} db_models.ReminderSettings
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /settings/reminders [put]
func (s *SettingsController) UpdateReminderSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateReminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	settings, err := s.settingsService.UpdateReminderSettings(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Reminder settings updated successfully")
}

// GetAccountSettings godoc
// @Summary Get account settings
// @Description Fetch profile and sender identity settings, creating defaults on first read
// @Tags Settings
// @Produce json
// @Success 200 {object} db_models.AccountSettings
// @Security BearerAuth
// @Router /settings/account [get]
func (s *SettingsController) GetAccountSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := s.settingsService.GetAccountSettings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Account settings fetched successfully")
}

// UpdateAccountSettings godoc
// @Summary Update account settings
// @Description Update profile and sender identity fields for the authenticated user
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAccountSettingsRequest true "Fields to update"
// @Success 200 {object} db_models.AccountSettings
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /settings/account [put]
func (s *SettingsController) UpdateAccountSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateAccountSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	settings, err := s.settingsService.UpdateAccountSettings(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Account settings updated successfully")
}
