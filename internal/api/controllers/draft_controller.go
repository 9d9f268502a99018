package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type DraftController struct {
	draftService services.DraftServiceInterface
}

func NewDraftController(draftService services.DraftServiceInterface) *DraftController {
	return &DraftController{draftService: draftService}
}

// RewriteReminder godoc
// @Summary Rewrite a reminder draft
// @Description Rewrite a reminder email body in the requested tone. Returns 412 when the assistant is not configured.
// @Tags Draft
// @Accept json
// @Produce json
// @Param request body request_models.DraftReminderRequest true "Draft body and target tone"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /drafts/rewrite [post]
func (d *DraftController) RewriteReminder(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req request_models.DraftReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Body and tone are required")
		return
	}

	body, err := d.draftService.RewriteReminder(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"body": body}, "Draft rewritten successfully")
}
