package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/app/services"
	"github.com/alumnihub/portal-api/internal/middleware"
)

// ContentController handles the hero section and site settings endpoints
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GetHero returns the landing page hero content
// @Summary Get hero content
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.HeroContent} "Hero content"
// @Router /content/hero [get]
func (c *ContentController) GetHero(ctx *gin.Context) {
	hero, err := c.contentService.GetHero(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

// UpdateHero edits the hero content
// @Summary Update hero content
// @Description Partially updates the singleton hero row. Admin only.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateHeroRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.HeroContent} "Updated hero content"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /content/hero [put]
func (c *ContentController) UpdateHero(ctx *gin.Context) {
	var req dto.UpdateHeroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	hero, err := c.contentService.UpdateHero(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hero))
}

// ListSettings returns every site setting
// @Summary List site settings
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SiteSetting} "Settings"
// @Router /content/settings [get]
func (c *ContentController) ListSettings(ctx *gin.Context) {
	settings, err := c.contentService.ListSettings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(settings))
}

// GetSetting returns one site setting by key
// @Summary Get site setting
// @Tags content
// @Produce json
// @Param id path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=models.SiteSetting} "Setting"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Router /content/settings/{id} [get]
func (c *ContentController) GetSetting(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Setting key is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	setting, err := c.contentService.GetSetting(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(setting))
}

// UpsertSetting creates or replaces a site setting
// @Summary Upsert site setting
// @Description Creates the setting if missing, otherwise overwrites its value. Admin only.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Setting key"
// @Param request body dto.UpdateSettingRequest true "Setting value"
// @Success 200 {object} dto.APIResponse{data=models.SiteSetting} "Stored setting"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /content/settings/{id} [put]
func (c *ContentController) UpsertSetting(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Setting key is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	setting, err := c.contentService.UpsertSetting(ctx, id, req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(setting))
}
