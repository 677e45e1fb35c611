package services

import (
	"context"
	"fmt"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/filestorage"
	"github.com/alumnihub/portal-api/internal/pkg/helpers"
	"github.com/alumnihub/portal-api/internal/pkg/logger"
)

// ProfileService handles the admin side of the registration lifecycle:
// listing, adjudication, edits and full account deletion.
type ProfileService struct {
	profileStore ProfileStore
	userStore    UserStore
	storage      filestorage.FileStorage
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileStore ProfileStore, userStore UserStore, storage filestorage.FileStorage) *ProfileService {
	return &ProfileService{
		profileStore: profileStore,
		userStore:    userStore,
		storage:      storage,
	}
}

// ListProfiles retrieves profiles with pagination, optionally filtered by
// lifecycle status.
func (s *ProfileService) ListProfiles(ctx context.Context, statusFilter string, page, pageSize int) ([]*models.Profile, *dto.PaginationInfo, error) {
	var status *models.ProfileStatus
	if statusFilter != "" {
		st := models.ProfileStatus(statusFilter)
		if !st.Valid() {
			return nil, nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown status %q", statusFilter))
		}
		status = &st
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	profiles, total, err := s.profileStore.ListProfiles(ctx, status, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return profiles, &pagination, nil
}

// GetProfile retrieves a single profile
func (s *ProfileService) GetProfile(ctx context.Context, profileID int64) (*models.Profile, error) {
	return s.profileStore.GetProfileByID(ctx, profileID)
}

// ApproveProfile moves a pending profile to approved and grants the role it
// requested. Approval from any other state is rejected.
func (s *ProfileService) ApproveProfile(ctx context.Context, profileID int64) (*models.Profile, error) {
	profile, err := s.profileStore.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !profile.Status.CanTransitionTo(models.StatusApproved) {
		return nil, apperrors.ErrIllegalTransition
	}

	if err := s.profileStore.ApproveProfile(ctx, profile.ID, profile.UserID, profile.RequestedRole); err != nil {
		return nil, err
	}

	return s.profileStore.GetProfileByID(ctx, profileID)
}

// RejectProfile moves a pending profile to rejected. No role is granted and
// the decision is final.
func (s *ProfileService) RejectProfile(ctx context.Context, profileID int64) (*models.Profile, error) {
	profile, err := s.profileStore.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !profile.Status.CanTransitionTo(models.StatusRejected) {
		return nil, apperrors.ErrIllegalTransition
	}

	if err := s.profileStore.RejectProfile(ctx, profile.ID); err != nil {
		return nil, err
	}

	return s.profileStore.GetProfileByID(ctx, profileID)
}

// UpdateProfile edits the declared fields of a profile. Lifecycle state is
// untouchable through this path.
func (s *ProfileService) UpdateProfile(ctx context.Context, profileID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if !req.HasChanges() {
		return s.profileStore.GetProfileByID(ctx, profileID)
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Batch != nil {
		updates["batch"] = *req.Batch
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.CurrentPosition != nil {
		updates["current_position"] = *req.CurrentPosition
	}
	if req.LinkedinURL != nil {
		updates["linkedin_url"] = *req.LinkedinURL
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.RollNo != nil {
		updates["roll_no"] = *req.RollNo
	}
	if req.LPA != nil {
		updates["lpa"] = *req.LPA
	}

	if err := s.profileStore.UpdateProfileFields(ctx, profileID, updates); err != nil {
		return nil, err
	}

	return s.profileStore.GetProfileByID(ctx, profileID)
}

// DeleteUser removes the account and everything hanging off it. The profile
// photo file is removed best-effort after the database commit.
func (s *ProfileService) DeleteUser(ctx context.Context, userID int64) error {
	photoURL, err := s.userStore.DeleteUserCascade(ctx, userID)
	if err != nil {
		return err
	}

	if photoURL != nil && *photoURL != "" {
		if err := s.storage.DeleteFile(*photoURL); err != nil {
			logger.Warn().Err(err).Str("path", *photoURL).Msg("Could not remove profile photo after account deletion")
		}
	}

	return nil
}
