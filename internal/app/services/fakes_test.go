package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeUserStore struct {
	users        map[int64]*models.User
	photoByID    map[int64]*string
	createdRoles map[int64][]models.AppRole
	nextID       int64
	createErr    error
	deletedIDs   []int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:        map[int64]*models.User{},
		photoByID:    map[int64]*string{},
		createdRoles: map[int64][]models.AppRole{},
		nextID:       1,
	}
}

func (f *fakeUserStore) addUser(email, password string) *models.User {
	u := &models.User{
		ID:        f.nextID,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users[u.ID] = u
	f.nextID++
	return u
}

func (f *fakeUserStore) CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.Profile, extraRoles ...models.AppRole) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user

	profile.ID = user.ID
	profile.UserID = user.ID
	f.createdRoles[user.ID] = append([]models.AppRole{models.RoleUser}, extraRoles...)
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserStore) UpdateLastLogin(ctx context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

func (f *fakeUserStore) DeleteUserCascade(ctx context.Context, userID int64) (*string, error) {
	if _, ok := f.users[userID]; !ok {
		return nil, apperrors.ErrUserNotFound
	}
	photo := f.photoByID[userID]
	delete(f.users, userID)
	delete(f.photoByID, userID)
	f.deletedIDs = append(f.deletedIDs, userID)
	return photo, nil
}

type fakeTokenStore struct {
	tokens  map[string]int64
	revoked map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]int64{}, revoked: map[string]bool{}}
}

func (f *fakeTokenStore) CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(ctx context.Context, token string) (int64, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if f.revoked[token] {
		return 0, apperrors.ErrTokenRevoked
	}
	return userID, nil
}

func (f *fakeTokenStore) RevokeToken(ctx context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	f.revoked[token] = true
	return nil
}

func (f *fakeTokenStore) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	for token, id := range f.tokens {
		if id == userID {
			f.revoked[token] = true
		}
	}
	return nil
}

type fakeProfileStore struct {
	profiles map[int64]*models.Profile
	granted  []models.AppRole
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[int64]*models.Profile{}}
}

func (f *fakeProfileStore) add(p *models.Profile) *models.Profile {
	f.profiles[p.ID] = p
	return p
}

func (f *fakeProfileStore) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileStore) GetProfileByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeProfileStore) ListProfiles(ctx context.Context, status *models.ProfileStatus, offset uint64, limit int) ([]*models.Profile, int64, error) {
	var out []*models.Profile
	for _, p := range f.profiles {
		if status == nil || p.Status == *status {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProfileStore) UpdateProfileFields(ctx context.Context, id int64, updates map[string]interface{}) error {
	p, ok := f.profiles[id]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	if v, ok := updates["full_name"]; ok {
		p.FullName = v.(string)
	}
	if v, ok := updates["company"]; ok {
		company := v.(string)
		p.Company = &company
	}
	return nil
}

func (f *fakeProfileStore) ApproveProfile(ctx context.Context, profileID, userID int64, role models.AppRole) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	if p.Status != models.StatusPending {
		return apperrors.ErrIllegalTransition
	}
	p.Status = models.StatusApproved
	f.granted = append(f.granted, role)
	return nil
}

func (f *fakeProfileStore) RejectProfile(ctx context.Context, profileID int64) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return apperrors.ErrProfileNotFound
	}
	if p.Status != models.StatusPending {
		return apperrors.ErrIllegalTransition
	}
	p.Status = models.StatusRejected
	return nil
}

type fakeRoleStore struct {
	roles map[int64][]models.AppRole
}

func newFakeRoleStore() *fakeRoleStore {
	return &fakeRoleStore{roles: map[int64][]models.AppRole{}}
}

func (f *fakeRoleStore) GetRolesByUserID(ctx context.Context, userID int64) ([]models.AppRole, error) {
	return f.roles[userID], nil
}

func (f *fakeRoleStore) HasRole(ctx context.Context, userID int64, role models.AppRole) (bool, error) {
	for _, r := range f.roles[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleStore) GrantRole(ctx context.Context, userID int64, role models.AppRole) error {
	for _, r := range f.roles[userID] {
		if r == role {
			return apperrors.ErrRoleAlreadyExists
		}
	}
	f.roles[userID] = append(f.roles[userID], role)
	return nil
}

func (f *fakeRoleStore) RevokeRole(ctx context.Context, userID int64, role models.AppRole) error {
	for i, r := range f.roles[userID] {
		if r == role {
			f.roles[userID] = append(f.roles[userID][:i], f.roles[userID][i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRoleNotFound
}

func (f *fakeRoleStore) ListUsersWithRole(ctx context.Context, role models.AppRole) ([]*models.RoleHolder, error) {
	var out []*models.RoleHolder
	for userID, roles := range f.roles {
		for _, r := range roles {
			if r == role {
				out = append(out, &models.RoleHolder{UserID: userID, GrantedAt: time.Now()})
			}
		}
	}
	return out, nil
}

type fakeJobStore struct {
	jobs    map[int64]*models.JobPosting
	nextID  int64
	deleted []int64
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[int64]*models.JobPosting{}, nextID: 1}
}

func (f *fakeJobStore) add(job *models.JobPosting) *models.JobPosting {
	job.ID = f.nextID
	f.nextID++
	f.jobs[job.ID] = job
	return job
}

func (f *fakeJobStore) ListActiveJobs(ctx context.Context) ([]*models.JobPosting, error) {
	var out []*models.JobPosting
	for _, j := range f.jobs {
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) ListJobsByProfile(ctx context.Context, profileID int64) ([]*models.JobPosting, error) {
	var out []*models.JobPosting
	for _, j := range f.jobs {
		if j.AlumniID == profileID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobStore) GetJobByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobPostingNotFound
	}
	return j, nil
}

func (f *fakeJobStore) CreateJob(ctx context.Context, job *models.JobPosting) (int64, error) {
	f.add(job)
	return job.ID, nil
}

func (f *fakeJobStore) UpdateJob(ctx context.Context, id int64, updates map[string]interface{}) error {
	j, ok := f.jobs[id]
	if !ok {
		return apperrors.ErrJobPostingNotFound
	}
	if v, ok := updates["title"]; ok {
		j.Title = v.(string)
	}
	if v, ok := updates["is_active"]; ok {
		j.IsActive = v.(bool)
	}
	return nil
}

func (f *fakeJobStore) DeleteJob(ctx context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return apperrors.ErrJobPostingNotFound
	}
	delete(f.jobs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeFileStorage records saved and deleted paths without touching disk.
type fakeFileStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fileHeader, "")
}

func (f *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	saved := "http://localhost:8080/uploads/" + path + "/" + fileHeader.Filename
	f.saved = append(f.saved, saved)
	return saved, nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}
