package services

import (
	"context"
	"time"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/repositories"
	"github.com/alumnihub/portal-api/internal/pkg/auth"
	"github.com/alumnihub/portal-api/internal/pkg/filestorage"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// satisfy them in production; tests substitute in-memory fakes.

// UserStore persists user accounts
type UserStore interface {
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile, extraRoles ...models.AppRole) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	DeleteUserCascade(ctx context.Context, userID int64) (*string, error)
}

// TokenStore persists refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// ProfileStore persists registration profiles
type ProfileStore interface {
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	ListProfiles(ctx context.Context, status *models.ProfileStatus, offset uint64, limit int) ([]*models.Profile, int64, error)
	UpdateProfileFields(ctx context.Context, id int64, updates map[string]interface{}) error
	ApproveProfile(ctx context.Context, profileID, userID int64, role models.AppRole) error
	RejectProfile(ctx context.Context, profileID int64) error
}

// RoleStore persists role assignments
type RoleStore interface {
	GetRolesByUserID(ctx context.Context, userID int64) ([]models.AppRole, error)
	HasRole(ctx context.Context, userID int64, role models.AppRole) (bool, error)
	GrantRole(ctx context.Context, userID int64, role models.AppRole) error
	RevokeRole(ctx context.Context, userID int64, role models.AppRole) error
	ListUsersWithRole(ctx context.Context, role models.AppRole) ([]*models.RoleHolder, error)
}

// AlumniStore persists the curated directory
type AlumniStore interface {
	ListAlumni(ctx context.Context) ([]*models.Alumnus, error)
	GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error)
	CreateAlumnus(ctx context.Context, alumnus *models.Alumnus) (int64, error)
	UpdateAlumnus(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteAlumnus(ctx context.Context, id int64) error
}

// EventStore persists events and the section header
type EventStore interface {
	ListEvents(ctx context.Context, from time.Time) ([]*models.Event, error)
	GetSection(ctx context.Context) (*models.Event, error)
	UpdateSection(ctx context.Context, title, description string) error
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	UpdateEvent(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteEvent(ctx context.Context, id int64) error
}

// GalleryStore persists gallery images and the header block
type GalleryStore interface {
	ListImages(ctx context.Context) ([]*models.GalleryImage, error)
	GetImageByID(ctx context.Context, id int64) (*models.GalleryImage, error)
	CreateImage(ctx context.Context, img *models.GalleryImage) (int64, error)
	DeleteImage(ctx context.Context, id int64) error
	GetContent(ctx context.Context) (*models.GalleryContent, error)
	UpdateContent(ctx context.Context, id int64, updates map[string]interface{}) error
}

// JobStore persists job postings
type JobStore interface {
	ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error)
	ListJobsByProfile(ctx context.Context, profileID int64) ([]*models.JobPosting, error)
	GetJobByID(ctx context.Context, id int64) (*models.JobPosting, error)
	CreateJob(ctx context.Context, job *models.JobPosting) (int64, error)
	UpdateJob(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteJob(ctx context.Context, id int64) error
}

// MentorshipStore persists mentorship offers
type MentorshipStore interface {
	ListAvailableOffers(ctx context.Context) ([]*models.MentorshipOffer, error)
	ListOffersByProfile(ctx context.Context, profileID int64) ([]*models.MentorshipOffer, error)
	GetOfferByID(ctx context.Context, id int64) (*models.MentorshipOffer, error)
	CreateOffer(ctx context.Context, offer *models.MentorshipOffer) (int64, error)
	UpdateOffer(ctx context.Context, id int64, updates map[string]interface{}) error
	DeleteOffer(ctx context.Context, id int64) error
}

// ContentStore persists the hero row and site settings
type ContentStore interface {
	GetHeroContent(ctx context.Context) (*models.HeroContent, error)
	UpdateHeroContent(ctx context.Context, id int64, updates map[string]interface{}) error
	GetSetting(ctx context.Context, id string) (*models.SiteSetting, error)
	ListSettings(ctx context.Context) ([]*models.SiteSetting, error)
	UpsertSetting(ctx context.Context, id, value string) error
}

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	ProfileService    *ProfileService
	AdminService      *AdminService
	AlumniService     *AlumniService
	EventService      *EventService
	GalleryService    *GalleryService
	JobService        *JobService
	MentorshipService *MentorshipService
	ContentService    *ContentService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, repos.TokenRepository,
			repos.ProfileRepository, repos.RoleRepository, jwtService, storage),
		ProfileService: NewProfileService(repos.ProfileRepository, repos.UserRepository, storage),
		AdminService:   NewAdminService(repos.UserRepository, repos.RoleRepository),
		AlumniService:  NewAlumniService(repos.AlumniRepository, repos.ContentRepository),
		EventService:   NewEventService(repos.EventRepository),
		GalleryService: NewGalleryService(repos.GalleryRepository, storage),
		JobService:     NewJobService(repos.JobRepository, repos.ProfileRepository),
		MentorshipService: NewMentorshipService(repos.MentorshipRepository,
			repos.ProfileRepository),
		ContentService: NewContentService(repos.ContentRepository),
	}
}
