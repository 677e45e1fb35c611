package services

import (
	"context"
	"errors"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

// Setting key for the alumni section heading shown on the public page.
const settingAlumniSectionTitle = "alumni_section_title"

const defaultAlumniSectionTitle = "Distinguished Alumni"

// AlumniService manages the curated alumni directory
type AlumniService struct {
	alumniStore  AlumniStore
	contentStore ContentStore
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(alumniStore AlumniStore, contentStore ContentStore) *AlumniService {
	return &AlumniService{
		alumniStore:  alumniStore,
		contentStore: contentStore,
	}
}

// ListAlumni retrieves the directory together with its section title
func (s *AlumniService) ListAlumni(ctx context.Context) (*dto.AlumniListResponse, error) {
	alumni, err := s.alumniStore.ListAlumni(ctx)
	if err != nil {
		return nil, err
	}

	title := defaultAlumniSectionTitle
	setting, err := s.contentStore.GetSetting(ctx, settingAlumniSectionTitle)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			return nil, err
		}
	} else if setting.Value != "" {
		title = setting.Value
	}

	return &dto.AlumniListResponse{
		Alumni:       alumni,
		SectionTitle: title,
	}, nil
}

// GetAlumnus retrieves a single directory entry
func (s *AlumniService) GetAlumnus(ctx context.Context, id int64) (*models.Alumnus, error) {
	return s.alumniStore.GetAlumnusByID(ctx, id)
}

// CreateAlumnus adds a new directory entry
func (s *AlumniService) CreateAlumnus(ctx context.Context, req *dto.CreateAlumnusRequest) (*models.Alumnus, error) {
	alumnus := &models.Alumnus{
		Name:            req.Name,
		Batch:           req.Batch,
		Department:      req.Department,
		Email:           req.Email,
		PhotoURL:        req.PhotoURL,
		CurrentPosition: req.CurrentPosition,
		Company:         req.Company,
		Linkedin:        req.Linkedin,
		LPA:             req.LPA,
		Message:         req.Message,
		RollNo:          req.RollNo,
	}

	id, err := s.alumniStore.CreateAlumnus(ctx, alumnus)
	if err != nil {
		return nil, err
	}

	return s.alumniStore.GetAlumnusByID(ctx, id)
}

// UpdateAlumnus partially updates a directory entry
func (s *AlumniService) UpdateAlumnus(ctx context.Context, id int64, req *dto.UpdateAlumnusRequest) (*models.Alumnus, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Batch != nil {
		updates["batch"] = *req.Batch
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.CurrentPosition != nil {
		updates["current_position"] = *req.CurrentPosition
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Linkedin != nil {
		updates["linkedin"] = *req.Linkedin
	}
	if req.LPA != nil {
		updates["lpa"] = *req.LPA
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.RollNo != nil {
		updates["roll_no"] = *req.RollNo
	}

	if err := s.alumniStore.UpdateAlumnus(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.alumniStore.GetAlumnusByID(ctx, id)
}

// DeleteAlumnus removes a directory entry
func (s *AlumniService) DeleteAlumnus(ctx context.Context, id int64) error {
	return s.alumniStore.DeleteAlumnus(ctx, id)
}

// UpdateSectionTitle sets the heading shown above the directory
func (s *AlumniService) UpdateSectionTitle(ctx context.Context, title string) error {
	return s.contentStore.UpsertSetting(ctx, settingAlumniSectionTitle, title)
}
