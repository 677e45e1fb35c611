package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/app/services"
	"github.com/alumnihub/portal-api/internal/middleware"
)

// GalleryController handles gallery image and header endpoints
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// ListImages returns all gallery images
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryImage} "Images"
// @Router /gallery [get]
func (c *GalleryController) ListImages(ctx *gin.Context) {
	images, err := c.galleryService.ListImages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(images))
}

// AddImage uploads a gallery image
// @Summary Add gallery image
// @Description Uploads an image file (multipart part "image") with optional metadata
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Success 201 {object} dto.APIResponse{data=models.GalleryImage} "Stored image"
// @Failure 400 {object} dto.ErrorResponse "Image file missing"
// @Router /gallery [post]
func (c *GalleryController) AddImage(ctx *gin.Context) {
	var req dto.AddGalleryImageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Image file is required").
			WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	img, err := c.galleryService.AddImage(ctx, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(img))
}

// DeleteImage removes a gallery image
// @Summary Delete gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /gallery/{id} [delete]
func (c *GalleryController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.galleryService.DeleteImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Gallery image deleted"))
}

// GetContent returns the gallery page header block
// @Summary Get gallery header
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.GalleryContent} "Header"
// @Router /gallery/content [get]
func (c *GalleryController) GetContent(ctx *gin.Context) {
	content, err := c.galleryService.GetContent(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(content))
}

// UpdateContent edits the gallery page header block
// @Summary Update gallery header
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateGalleryContentRequest true "Header fields"
// @Success 200 {object} dto.APIResponse{data=models.GalleryContent} "Updated header"
// @Router /gallery/content [put]
func (c *GalleryController) UpdateContent(ctx *gin.Context) {
	var req dto.UpdateGalleryContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	content, err := c.galleryService.UpdateContent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(content))
}
