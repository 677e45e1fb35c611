package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

type profileFixture struct {
	service  *ProfileService
	profiles *fakeProfileStore
	users    *fakeUserStore
	storage  *fakeFileStorage
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		profiles: newFakeProfileStore(),
		users:    newFakeUserStore(),
		storage:  &fakeFileStorage{},
	}
	f.service = NewProfileService(f.profiles, f.users, f.storage)
	return f
}

func pendingProfile(id, userID int64, requested models.AppRole) *models.Profile {
	return &models.Profile{
		ID:            id,
		UserID:        userID,
		FullName:      "Jane Doe",
		RequestedRole: requested,
		Status:        models.StatusPending,
	}
}

func TestApproveProfileGrantsRequestedRole(t *testing.T) {
	f := newProfileFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleAlumni))

	profile, err := f.service.ApproveProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, profile.Status)
	assert.Equal(t, []models.AppRole{models.RoleAlumni}, f.profiles.granted)
}

func TestApproveProfileRejectsTerminalStates(t *testing.T) {
	f := newProfileFixture()
	rejected := pendingProfile(1, 7, models.RoleStudent)
	rejected.Status = models.StatusRejected
	f.profiles.add(rejected)

	_, err := f.service.ApproveProfile(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	assert.Empty(t, f.profiles.granted)
}

func TestRejectProfileIsFinal(t *testing.T) {
	f := newProfileFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleStudent))

	profile, err := f.service.RejectProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, profile.Status)

	// A second decision on the same profile is illegal either way
	_, err = f.service.RejectProfile(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	_, err = f.service.ApproveProfile(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
}

func TestApproveProfileNotFound(t *testing.T) {
	f := newProfileFixture()

	_, err := f.service.ApproveProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestListProfilesRejectsUnknownStatus(t *testing.T) {
	f := newProfileFixture()

	_, _, err := f.service.ListProfiles(context.Background(), "archived", 1, 10)
	require.Error(t, err)

	var customErr *apperrors.CustomError
	assert.ErrorAs(t, err, &customErr)
}

func TestListProfilesFiltersByStatus(t *testing.T) {
	f := newProfileFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleAlumni))
	approved := pendingProfile(2, 8, models.RoleStudent)
	approved.Status = models.StatusApproved
	f.profiles.add(approved)

	profiles, pagination, err := f.service.ListProfiles(context.Background(), "pending", 1, 10)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, int64(1), profiles[0].ID)
	assert.Equal(t, int64(1), pagination.TotalItems)
}

func TestUpdateProfileWithoutChangesReturnsCurrent(t *testing.T) {
	f := newProfileFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleAlumni))

	profile, err := f.service.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	f := newProfileFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleAlumni))

	name := "Jane Smith"
	company := "Acme"
	profile, err := f.service.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{
		FullName: &name,
		Company:  &company,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", profile.FullName)
	require.NotNil(t, profile.Company)
	assert.Equal(t, "Acme", *profile.Company)
}

func TestDeleteUserRemovesPhoto(t *testing.T) {
	f := newProfileFixture()
	user := f.users.addUser("jane@alumni.edu", "hash")
	photo := "http://localhost:8080/uploads/profiles/jane.jpg"
	f.users.photoByID[user.ID] = &photo

	require.NoError(t, f.service.DeleteUser(context.Background(), user.ID))
	assert.Equal(t, []string{photo}, f.storage.deleted)
	assert.Equal(t, []int64{user.ID}, f.users.deletedIDs)
}

func TestDeleteUserNotFound(t *testing.T) {
	f := newProfileFixture()

	err := f.service.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	// Repeating the delete keeps failing the same way
	err = f.service.DeleteUser(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
