package services

import (
	"context"
	"errors"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

// MentorshipService manages mentorship offers with the same ownership rules
// as job postings.
type MentorshipService struct {
	mentorshipStore MentorshipStore
	profileStore    ProfileStore
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(mentorshipStore MentorshipStore, profileStore ProfileStore) *MentorshipService {
	return &MentorshipService{
		mentorshipStore: mentorshipStore,
		profileStore:    profileStore,
	}
}

// ListAvailableOffers retrieves the public mentorship board
func (s *MentorshipService) ListAvailableOffers(ctx context.Context) ([]*models.MentorshipOffer, error) {
	return s.mentorshipStore.ListAvailableOffers(ctx)
}

// ListMyOffers retrieves every offer owned by the caller's profile
func (s *MentorshipService) ListMyOffers(ctx context.Context, userID int64) ([]*models.MentorshipOffer, error) {
	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mentorshipStore.ListOffersByProfile(ctx, profile.ID)
}

// GetOffer retrieves a single offer
func (s *MentorshipService) GetOffer(ctx context.Context, id int64) (*models.MentorshipOffer, error) {
	return s.mentorshipStore.GetOfferByID(ctx, id)
}

// CreateOffer creates an offer owned by the caller's approved profile
func (s *MentorshipService) CreateOffer(ctx context.Context, userID int64, req *dto.CreateMentorshipOfferRequest) (*models.MentorshipOffer, error) {
	profile, err := s.profileStore.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Status != models.StatusApproved {
		return nil, apperrors.ErrPermissionDenied
	}

	offer := &models.MentorshipOffer{
		AlumniID:       profile.ID,
		Title:          req.Title,
		Description:    req.Description,
		ExpertiseAreas: req.ExpertiseAreas,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		IsAvailable:    true,
	}

	id, err := s.mentorshipStore.CreateOffer(ctx, offer)
	if err != nil {
		return nil, err
	}

	return s.mentorshipStore.GetOfferByID(ctx, id)
}

// UpdateOffer partially updates an offer the caller owns
func (s *MentorshipService) UpdateOffer(ctx context.Context, userID int64, isAdmin bool, id int64, req *dto.UpdateMentorshipOfferRequest) (*models.MentorshipOffer, error) {
	if err := s.authorize(ctx, userID, isAdmin, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ExpertiseAreas != nil {
		updates["expertise_areas"] = req.ExpertiseAreas
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) == 0 {
		return s.mentorshipStore.GetOfferByID(ctx, id)
	}

	if err := s.mentorshipStore.UpdateOffer(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.mentorshipStore.GetOfferByID(ctx, id)
}

// DeleteOffer removes an offer the caller owns
func (s *MentorshipService) DeleteOffer(ctx context.Context, userID int64, isAdmin bool, id int64) error {
	if err := s.authorize(ctx, userID, isAdmin, id); err != nil {
		return err
	}
	return s.mentorshipStore.DeleteOffer(ctx, id)
}

func (s *MentorshipService) authorize(ctx context.Context, userID int64, isAdmin bool, offerID int64) error {
	offer, err := s.mentorshipStore.GetOfferByID(ctx, offerID)
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
	if offer.AlumniID != profile.ID {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
