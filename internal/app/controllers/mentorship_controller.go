package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/app/services"
	"github.com/alumnihub/portal-api/internal/middleware"
)

// MentorshipController handles the mentorship marketplace endpoints
type MentorshipController struct {
	mentorshipService *services.MentorshipService
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService) *MentorshipController {
	return &MentorshipController{mentorshipService: mentorshipService}
}

// ListOffers returns the public mentorship marketplace
// @Summary List available mentorship offers
// @Description Returns available offers with mentor details, newest first
// @Tags mentorship
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipOffer} "Offers"
// @Router /mentorship [get]
func (c *MentorshipController) ListOffers(ctx *gin.Context) {
	offers, err := c.mentorshipService.ListAvailableOffers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offers))
}

// ListMyOffers returns the caller's offers
// @Summary List my mentorship offers
// @Description Returns every offer owned by the caller, including unavailable ones
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipOffer} "Offers"
// @Router /mentorship/mine [get]
func (c *MentorshipController) ListMyOffers(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	offers, err := c.mentorshipService.ListMyOffers(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offers))
}

// GetOffer returns a single offer
// @Summary Get mentorship offer
// @Tags mentorship
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipOffer} "Offer"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /mentorship/{id} [get]
func (c *MentorshipController) GetOffer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	offer, err := c.mentorshipService.GetOffer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offer))
}

// CreateOffer creates an offer
// @Summary Create mentorship offer
// @Description Creates an offer owned by the caller's approved profile
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipOfferRequest true "Offer"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipOffer} "Created offer"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Profile not approved"
// @Router /mentorship [post]
func (c *MentorshipController) CreateOffer(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateMentorshipOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	offer, err := c.mentorshipService.CreateOffer(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(offer))
}

// UpdateOffer edits an offer
// @Summary Update mentorship offer
// @Description Edits an offer the caller owns. Admins may edit any offer.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param request body dto.UpdateMentorshipOfferRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipOffer} "Updated offer"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /mentorship/{id} [put]
func (c *MentorshipController) UpdateOffer(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipOfferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	offer, err := c.mentorshipService.UpdateOffer(ctx, userID, middleware.IsAdmin(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(offer))
}

// DeleteOffer removes an offer
// @Summary Delete mentorship offer
// @Description Deletes an offer the caller owns. Admins may delete any offer.
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /mentorship/{id} [delete]
func (c *MentorshipController) DeleteOffer(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorshipService.DeleteOffer(ctx, userID, middleware.IsAdmin(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Mentorship offer deleted"))
}
