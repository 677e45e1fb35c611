package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

type fakeAlumniStore struct {
	records map[int64]*models.Alumnus
	nextID  int64
}

func newFakeAlumniStore() *fakeAlumniStore {
	return &fakeAlumniStore{records: map[int64]*models.Alumnus{}, nextID: 1}
}

func (f *fakeAlumniStore) ListAlumni(ctx context.Context) ([]*models.Alumnus, error) {
	var out []*models.Alumnus
	for _, a := range f.records {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAlumniStore) GetAlumnusByID(ctx context.Context, id int64) (*models.Alumnus, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrAlumnusNotFound
	}
	return a, nil
}

func (f *fakeAlumniStore) CreateAlumnus(ctx context.Context, alumnus *models.Alumnus) (int64, error) {
	alumnus.ID = f.nextID
	f.nextID++
	f.records[alumnus.ID] = alumnus
	return alumnus.ID, nil
}

func (f *fakeAlumniStore) UpdateAlumnus(ctx context.Context, id int64, updates map[string]interface{}) error {
	a, ok := f.records[id]
	if !ok {
		return apperrors.ErrAlumnusNotFound
	}
	if v, ok := updates["name"]; ok {
		a.Name = v.(string)
	}
	return nil
}

func (f *fakeAlumniStore) DeleteAlumnus(ctx context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return apperrors.ErrAlumnusNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeContentStore struct {
	settings map[string]string
	hero     *models.HeroContent
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{settings: map[string]string{}}
}

func (f *fakeContentStore) GetHeroContent(ctx context.Context) (*models.HeroContent, error) {
	if f.hero == nil {
		return nil, apperrors.ErrHeroContentNotFound
	}
	return f.hero, nil
}

func (f *fakeContentStore) UpdateHeroContent(ctx context.Context, id int64, updates map[string]interface{}) error {
	if f.hero == nil {
		return apperrors.ErrHeroContentNotFound
	}
	if v, ok := updates["title"]; ok {
		f.hero.Title = v.(string)
	}
	return nil
}

func (f *fakeContentStore) GetSetting(ctx context.Context, id string) (*models.SiteSetting, error) {
	value, ok := f.settings[id]
	if !ok {
		return nil, apperrors.ErrSettingNotFound
	}
	return &models.SiteSetting{ID: id, Value: value, UpdatedAt: time.Now()}, nil
}

func (f *fakeContentStore) ListSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	var out []*models.SiteSetting
	for id, value := range f.settings {
		out = append(out, &models.SiteSetting{ID: id, Value: value})
	}
	return out, nil
}

func (f *fakeContentStore) UpsertSetting(ctx context.Context, id, value string) error {
	f.settings[id] = value
	return nil
}

func TestListAlumniFallsBackToDefaultTitle(t *testing.T) {
	alumniStore := newFakeAlumniStore()
	contentStore := newFakeContentStore()
	service := NewAlumniService(alumniStore, contentStore)

	_, err := alumniStore.CreateAlumnus(context.Background(), &models.Alumnus{Name: "Jane", Batch: "2015"})
	require.NoError(t, err)

	resp, err := service.ListAlumni(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Alumni, 1)
	assert.Equal(t, "Distinguished Alumni", resp.SectionTitle)
}

func TestListAlumniUsesStoredTitle(t *testing.T) {
	alumniStore := newFakeAlumniStore()
	contentStore := newFakeContentStore()
	service := NewAlumniService(alumniStore, contentStore)

	require.NoError(t, service.UpdateSectionTitle(context.Background(), "Notable Graduates"))

	resp, err := service.ListAlumni(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Notable Graduates", resp.SectionTitle)
}

func TestCreateAndUpdateAlumnus(t *testing.T) {
	service := NewAlumniService(newFakeAlumniStore(), newFakeContentStore())

	created, err := service.CreateAlumnus(context.Background(), &dto.CreateAlumnusRequest{
		Name:       "Jane Doe",
		Batch:      "2015",
		Department: "CSE",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", created.Name)

	name := "Jane Smith"
	updated, err := service.UpdateAlumnus(context.Background(), created.ID, &dto.UpdateAlumnusRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
}

func TestGetAlumnusNotFound(t *testing.T) {
	service := NewAlumniService(newFakeAlumniStore(), newFakeContentStore())

	_, err := service.GetAlumnus(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrAlumnusNotFound)
}
