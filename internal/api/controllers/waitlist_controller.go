package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type WaitlistController struct {
	waitlistService services.WaitlistServiceInterface
}

func NewWaitlistController(waitlistService services.WaitlistServiceInterface) *WaitlistController {
	return &WaitlistController{waitlistService: waitlistService}
}

// Signup godoc
// @Summary Join the waitlist
// @Description Add an email to the launch waitlist. Signing up twice with the same email is a no-op.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param request body request_models.WaitlistSignupRequest true "Waitlist signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /waitlist/signup [post]
func (w *WaitlistController) Signup(c *gin.Context) {
	var req request_models.WaitlistSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := w.waitlistService.Signup(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "You are on the waitlist")
}

// Count godoc
// @Summary Get waitlist size
// @Tags Waitlist
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /waitlist/count [get]
func (w *WaitlistController) Count(c *gin.Context) {
	count, err := w.waitlistService.Count(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"count": count}, "Waitlist size fetched successfully")
}
