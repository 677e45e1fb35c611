package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/app/services"
	"github.com/alumnihub/portal-api/internal/middleware"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// AdminController handles administrator management and the internal
// service-to-service deletion endpoint.
type AdminController struct {
	adminService   *services.AdminService
	profileService *services.ProfileService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, profileService *services.ProfileService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		profileService: profileService,
	}
}

// AddAdmin creates an administrator account
// @Summary Add administrator
// @Description Creates a new administrator account. The profile is created already approved.
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddAdminRequest true "Administrator details"
// @Success 201 {object} dto.APIResponse{data=models.User} "Administrator created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/admins [post]
func (c *AdminController) AddAdmin(ctx *gin.Context) {
	var req dto.AddAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	user, err := c.adminService.AddAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user))
}

// ListAdmins lists administrator accounts
// @Summary List administrators
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.RoleHolder} "Administrators"
// @Router /admin/admins [get]
func (c *AdminController) ListAdmins(ctx *gin.Context) {
	admins, err := c.adminService.ListAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admins))
}

// RevokeAdmin removes the admin role from a user
// @Summary Revoke administrator
// @Description Removes the admin role. The account itself is kept. The last administrator cannot be demoted.
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse "Admin role revoked"
// @Failure 404 {object} dto.ErrorResponse "Role assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Cannot remove the last administrator"
// @Router /admin/admins/{userId} [delete]
func (c *AdminController) RevokeAdmin(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.adminService.RevokeAdmin(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Admin role revoked"))
}

// InternalDeleteUser handles the service-to-service deletion call. It keeps
// the legacy wire contract of the standalone deletion service: flat
// {"success","message"} and {"error"} bodies instead of the API envelope.
func (c *AdminController) InternalDeleteUser(ctx *gin.Context) {
	userID, err := parseLegacyUserID(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.DeleteUserError{Error: "Invalid userId"})
		return
	}

	if err := c.profileService.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.DeleteUserError{Error: "User not found"})
			return
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Internal user deletion failed")
		ctx.JSON(http.StatusInternalServerError, dto.DeleteUserError{Error: "Failed to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteUserResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}
