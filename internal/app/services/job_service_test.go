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

type jobFixture struct {
	service  *JobService
	jobs     *fakeJobStore
	profiles *fakeProfileStore
}

func newJobFixture() *jobFixture {
	f := &jobFixture{
		jobs:     newFakeJobStore(),
		profiles: newFakeProfileStore(),
	}
	f.service = NewJobService(f.jobs, f.profiles)
	return f
}

func (f *jobFixture) addApprovedProfile(profileID, userID int64) *models.Profile {
	p := pendingProfile(profileID, userID, models.RoleAlumni)
	p.Status = models.StatusApproved
	return f.profiles.add(p)
}

func TestCreateJobRequiresApprovedProfile(t *testing.T) {
	f := newJobFixture()
	f.profiles.add(pendingProfile(1, 7, models.RoleAlumni))

	_, err := f.service.CreateJob(context.Background(), 7, &dto.CreateJobPostingRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build services",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateJobOwnedByCallerProfile(t *testing.T) {
	f := newJobFixture()
	f.addApprovedProfile(1, 7)

	job, err := f.service.CreateJob(context.Background(), 7, &dto.CreateJobPostingRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Build services",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), job.AlumniID)
	assert.True(t, job.IsActive)
}

func TestListActiveJobsSkipsInactive(t *testing.T) {
	f := newJobFixture()
	f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Active", IsActive: true})
	f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Closed", IsActive: false})

	jobs, err := f.service.ListActiveJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Active", jobs[0].Title)
}

func TestUpdateJobOwnerOnly(t *testing.T) {
	f := newJobFixture()
	f.addApprovedProfile(1, 7)
	f.addApprovedProfile(2, 8)
	job := f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Old", IsActive: true})

	title := "New"
	_, err := f.service.UpdateJob(context.Background(), 8, false, job.ID, &dto.UpdateJobPostingRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := f.service.UpdateJob(context.Background(), 7, false, job.ID, &dto.UpdateJobPostingRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestUpdateJobAdminBypassesOwnership(t *testing.T) {
	f := newJobFixture()
	f.addApprovedProfile(1, 7)
	job := f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Old", IsActive: true})

	inactive := false
	updated, err := f.service.UpdateJob(context.Background(), 99, true, job.ID, &dto.UpdateJobPostingRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateJobNotFoundBeforePermissionCheck(t *testing.T) {
	f := newJobFixture()

	title := "New"
	_, err := f.service.UpdateJob(context.Background(), 7, false, 42, &dto.UpdateJobPostingRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrJobPostingNotFound)
}

func TestDeleteJobWithoutProfileIsDenied(t *testing.T) {
	f := newJobFixture()
	job := f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Job", IsActive: true})

	err := f.service.DeleteJob(context.Background(), 7, false, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteJobByOwner(t *testing.T) {
	f := newJobFixture()
	f.addApprovedProfile(1, 7)
	job := f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Job", IsActive: true})

	require.NoError(t, f.service.DeleteJob(context.Background(), 7, false, job.ID))
	assert.Equal(t, []int64{job.ID}, f.jobs.deleted)
}

func TestListMyJobsIncludesInactive(t *testing.T) {
	f := newJobFixture()
	f.addApprovedProfile(1, 7)
	f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Active", IsActive: true})
	f.jobs.add(&models.JobPosting{AlumniID: 1, Title: "Closed", IsActive: false})
	f.jobs.add(&models.JobPosting{AlumniID: 2, Title: "Someone else", IsActive: true})

	jobs, err := f.service.ListMyJobs(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
