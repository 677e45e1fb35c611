package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ProfileStatus
		to      ProfileStatus
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"approved is terminal", StatusApproved, StatusRejected, false},
		{"approved cannot re-approve", StatusApproved, StatusApproved, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProfileStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, ProfileStatus("deleted").Valid())
	assert.False(t, ProfileStatus("").Valid())
}
