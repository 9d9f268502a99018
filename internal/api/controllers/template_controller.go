package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicemanager/internal/models/request_models"
	"invoicemanager/internal/services"
	"invoicemanager/pkg/utils"
)

type TemplateController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplateController(templateService services.TemplateServiceInterface) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// CreateTemplate godoc
// @Summary Create an email template
// @Description Create a reminder email template. Marking it default unsets any other default for the same tone.
// @Tags Template
// @Accept json
// @Produce json
// @Param request body request_models.CreateTemplateRequest true "Template data"
// @Success 200 {object} db_models.EmailTemplate
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates [post]
func (t *TemplateController) CreateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template payload")
		return
	}

	template, err := t.templateService.CreateTemplate(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template created successfully")
}

// UpdateTemplate godoc
// @Summary Update an email template
// @Description Update a template owned by the authenticated user
// @Tags Template
// @Accept json
// @Produce json
// @Param templateId path string true "Template ID"
// @Param request body request_models.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} db_models.EmailTemplate
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates/{templateId} [put]
func (t *TemplateController) UpdateTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := pathUUID(c, "templateId")
	if !ok {
		return
	}

	var req request_models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template payload")
		return
	}

	template, err := t.templateService.UpdateTemplate(c.Request.Context(), userID, templateID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template updated successfully")
}

// GetTemplate godoc
// @Summary Get an email template
// @Tags Template
// @Produce json
// @Param templateId path string true "Template ID"
// @Success 200 {object} db_models.EmailTemplate
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates/{templateId} [get]
func (t *TemplateController) GetTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := pathUUID(c, "templateId")
	if !ok {
		return
	}

	template, err := t.templateService.GetTemplate(c.Request.Context(), userID, templateID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template fetched successfully")
}

// ListTemplates godoc
// @Summary List email templates
// @Description List all templates owned by the authenticated user
// @Tags Template
// @Produce json
// @Success 200 {array} db_models.EmailTemplate
// @Security BearerAuth
// @Router /templates [get]
func (t *TemplateController) ListTemplates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	templates, err := t.templateService.ListTemplates(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

// DeleteTemplate godoc
// @Summary Delete an email template
// @Tags Template
// @Produce json
// @Param templateId path string true "Template ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /templates/{templateId} [delete]
func (t *TemplateController) DeleteTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	templateID, ok := pathUUID(c, "templateId")
	if !ok {
		return
	}

	if err := t.templateService.DeleteTemplate(c.Request.Context(), userID, templateID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Template deleted successfully")
}
