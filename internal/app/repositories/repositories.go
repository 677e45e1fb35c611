package repositories

import (
	"github.com/alumnihub/portal-api/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	ProfileRepository    *ProfileRepository
	RoleRepository       *RoleRepository
	AlumniRepository     *AlumniRepository
	EventRepository      *EventRepository
	GalleryRepository    *GalleryRepository
	JobRepository        *JobRepository
	MentorshipRepository *MentorshipRepository
	ContentRepository    *ContentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database),
		TokenRepository:      NewTokenRepository(database.Pool),
		ProfileRepository:    NewProfileRepository(database),
		RoleRepository:       NewRoleRepository(database.Pool),
		AlumniRepository:     NewAlumniRepository(database.Pool),
		EventRepository:      NewEventRepository(database.Pool),
		GalleryRepository:    NewGalleryRepository(database.Pool),
		JobRepository:        NewJobRepository(database.Pool),
		MentorshipRepository: NewMentorshipRepository(database.Pool),
		ContentRepository:    NewContentRepository(database.Pool),
	}
}
