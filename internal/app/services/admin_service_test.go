package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

type adminFixture struct {
	service *AdminService
	users   *fakeUserStore
	roles   *fakeRoleStore
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users: newFakeUserStore(),
		roles: newFakeRoleStore(),
	}
	f.service = NewAdminService(f.users, f.roles)
	return f
}

func TestAddAdminGrantsRoleInCreateTransaction(t *testing.T) {
	f := newAdminFixture()

	user, err := f.service.AddAdmin(context.Background(), &dto.AddAdminRequest{
		Email:    "root@alumni.edu",
		Password: "secret123",
	})
	require.NoError(t, err)

	// The admin role rides along in the account creation itself rather
	// than a follow-up grant.
	assert.Contains(t, f.users.createdRoles[user.ID], models.RoleAdmin)
	assert.Empty(t, f.roles.roles[user.ID])
}

func TestAddAdminLeavesNothingBehindOnFailure(t *testing.T) {
	f := newAdminFixture()
	f.users.createErr = errors.New("insert failed")

	_, err := f.service.AddAdmin(context.Background(), &dto.AddAdminRequest{
		Email:    "root@alumni.edu",
		Password: "secret123",
	})
	require.Error(t, err)

	assert.Empty(t, f.users.users)
	assert.Empty(t, f.users.createdRoles)
	for id := range f.roles.roles {
		assert.Empty(t, f.roles.roles[id])
	}
}

func TestAddAdminRejectsDuplicateEmail(t *testing.T) {
	f := newAdminFixture()
	f.users.addUser("root@alumni.edu", "hash")

	_, err := f.service.AddAdmin(context.Background(), &dto.AddAdminRequest{
		Email:    "root@alumni.edu",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRevokeAdminRefusesLastAdmin(t *testing.T) {
	f := newAdminFixture()
	user := f.users.addUser("root@alumni.edu", "hash")
	require.NoError(t, f.roles.GrantRole(context.Background(), user.ID, models.RoleAdmin))

	err := f.service.RevokeAdmin(context.Background(), user.ID)
	require.Error(t, err)

	var customErr *apperrors.CustomError
	assert.ErrorAs(t, err, &customErr)

	has, _ := f.roles.HasRole(context.Background(), user.ID, models.RoleAdmin)
	assert.True(t, has)
}

func TestRevokeAdminWithRemainingAdmins(t *testing.T) {
	f := newAdminFixture()
	first := f.users.addUser("root@alumni.edu", "hash")
	second := f.users.addUser("backup@alumni.edu", "hash")
	require.NoError(t, f.roles.GrantRole(context.Background(), first.ID, models.RoleAdmin))
	require.NoError(t, f.roles.GrantRole(context.Background(), second.ID, models.RoleAdmin))

	require.NoError(t, f.service.RevokeAdmin(context.Background(), second.ID))

	has, _ := f.roles.HasRole(context.Background(), second.ID, models.RoleAdmin)
	assert.False(t, has)
}
