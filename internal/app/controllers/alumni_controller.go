package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/app/services"
	"github.com/alumnihub/portal-api/internal/middleware"
)

// AlumniController handles the curated alumni directory endpoints
type AlumniController struct {
	alumniService *services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService) *AlumniController {
	return &AlumniController{alumniService: alumniService}
}

// ListAlumni returns the public directory
// @Summary List alumni
// @Description Returns the curated alumni directory with its section title
// @Tags alumni
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AlumniListResponse} "Directory"
// @Router /alumni [get]
func (c *AlumniController) ListAlumni(ctx *gin.Context) {
	resp, err := c.alumniService.ListAlumni(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetAlumnus returns a single directory entry
// @Summary Get alumnus
// @Tags alumni
// @Produce json
// @Param id path int true "Alumnus ID"
// @Success 200 {object} dto.APIResponse{data=models.Alumnus} "Entry"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /alumni/{id} [get]
func (c *AlumniController) GetAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	alumnus, err := c.alumniService.GetAlumnus(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumnus))
}

// CreateAlumnus adds a directory entry
// @Summary Create alumnus
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlumnusRequest true "Entry"
// @Success 201 {object} dto.APIResponse{data=models.Alumnus} "Created entry"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /alumni [post]
func (c *AlumniController) CreateAlumnus(ctx *gin.Context) {
	var req dto.CreateAlumnusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	alumnus, err := c.alumniService.CreateAlumnus(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(alumnus))
}

// UpdateAlumnus edits a directory entry
// @Summary Update alumnus
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Param request body dto.UpdateAlumnusRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Alumnus} "Updated entry"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /alumni/{id} [put]
func (c *AlumniController) UpdateAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAlumnusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	alumnus, err := c.alumniService.UpdateAlumnus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(alumnus))
}

// DeleteAlumnus removes a directory entry
// @Summary Delete alumnus
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alumnus ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /alumni/{id} [delete]
func (c *AlumniController) DeleteAlumnus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumniService.DeleteAlumnus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Alumnus deleted"))
}

// UpdateSectionTitle sets the directory heading
// @Summary Update alumni section title
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingRequest true "New title"
// @Success 200 {object} dto.APIResponse "Title updated"
// @Router /alumni/section-title [put]
func (c *AlumniController) UpdateSectionTitle(ctx *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	if err := c.alumniService.UpdateSectionTitle(ctx, req.Value); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Section title updated"))
}
