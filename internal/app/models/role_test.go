package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []AppRole
		want  AppRole
	}{
		{"no assignments", nil, RoleUser},
		{"base user only", []AppRole{RoleUser}, RoleUser},
		{"student outranks user", []AppRole{RoleUser, RoleStudent}, RoleStudent},
		{"alumni outranks student", []AppRole{RoleStudent, RoleAlumni, RoleUser}, RoleAlumni},
		{"admin outranks everything", []AppRole{RoleUser, RoleAlumni, RoleAdmin}, RoleAdmin},
		{"order does not matter", []AppRole{RoleAdmin, RoleUser}, RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveRole(tt.roles))
		})
	}
}

func TestAppRoleRequestable(t *testing.T) {
	assert.True(t, RoleStudent.Requestable())
	assert.True(t, RoleAlumni.Requestable())
	assert.False(t, RoleAdmin.Requestable())
	assert.False(t, RoleUser.Requestable())
	assert.False(t, AppRole("superuser").Requestable())
}
