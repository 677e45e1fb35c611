package services

import (
	"context"
	"errors"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

// JobService manages job postings. Postings are owned by the poster's
// profile; writes require ownership or the admin role.
type JobService struct {
	jobStore     JobStore
	profileStore ProfileStore
}

// NewJobService creates a new JobService
func NewJobService(jobStore JobStore, profileStore ProfileStore) *JobService {
	return &JobService{
		jobStore:     jobStore,
		profileStore: profileStore,
	}
}

// ListActiveJobs retrieves active postings for the public board
func (s *JobService) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	return s.jobStore.ListActiveJobs(ctx)
}

// ListMyJobs retrieves every posting owned by the caller's profile
func (s *JobService) ListMyJobs(ctx context.Context, userID int64) ([]*models.JobPosting, error) {
	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.jobStore.ListJobsByProfile(ctx, profile.ID)
}

// GetJob retrieves a single posting
func (s *JobService) GetJob(ctx context.Context, id int64) (*models.JobPosting, error) {
	return s.jobStore.GetJobByID(ctx, id)
}

// CreateJob creates a posting owned by the caller's approved profile
func (s *JobService) CreateJob(ctx context.Context, userID int64, req *dto.CreateJobPostingRequest) (*models.JobPosting, error) {
	profile, err := s.requireApprovedProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	job := &models.JobPosting{
		AlumniID:    profile.ID,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		ApplyLink:   req.ApplyLink,
		IsActive:    true,
	}

	id, err := s.jobStore.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	return s.jobStore.GetJobByID(ctx, id)
}

// UpdateJob partially updates a posting the caller owns. Admins may update
// any posting.
func (s *JobService) UpdateJob(ctx context.Context, userID int64, isAdmin bool, id int64, req *dto.UpdateJobPostingRequest) (*models.JobPosting, error) {
	if err := s.authorize(ctx, userID, isAdmin, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ApplyLink != nil {
		updates["apply_link"] = *req.ApplyLink
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return s.jobStore.GetJobByID(ctx, id)
	}

	if err := s.jobStore.UpdateJob(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.jobStore.GetJobByID(ctx, id)
}

// DeleteJob removes a posting the caller owns. Admins may delete any posting.
func (s *JobService) DeleteJob(ctx context.Context, userID int64, isAdmin bool, id int64) error {
	if err := s.authorize(ctx, userID, isAdmin, id); err != nil {
		return err
	}
	return s.jobStore.DeleteJob(ctx, id)
}

func (s *JobService) authorize(ctx context.Context, userID int64, isAdmin bool, jobID int64) error {
	job, err := s.jobStore.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return err
	}
	if job.AlumniID != profile.ID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}

func (s *JobService) requireApprovedProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Status != models.StatusApproved {
		return nil, apperrors.ErrPermissionDenied
	}
	return profile, nil
}
