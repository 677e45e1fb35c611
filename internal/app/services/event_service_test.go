package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
)

type fakeEventStore struct {
	section *models.Event
	events  map[int64]*models.Event
	nextID  int64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{
		section: &models.Event{ID: 1, Type: models.EventTypeSection, Title: "Events", Description: "What we host"},
		events:  map[int64]*models.Event{},
		nextID:  2,
	}
}

func (f *fakeEventStore) ListEvents(ctx context.Context, from time.Time) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range f.events {
		if e.EventDate == nil || e.EventDate.Before(from) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(*out[j].EventDate) })
	return out, nil
}

func (f *fakeEventStore) GetSection(ctx context.Context) (*models.Event, error) {
	return f.section, nil
}

func (f *fakeEventStore) UpdateSection(ctx context.Context, title, description string) error {
	f.section.Title = title
	f.section.Description = description
	return nil
}

func (f *fakeEventStore) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event
	return event.ID, nil
}

func (f *fakeEventStore) UpdateEvent(ctx context.Context, id int64, updates map[string]interface{}) error {
	e, ok := f.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if v, ok := updates["title"]; ok {
		e.Title = v.(string)
	}
	return nil
}

func (f *fakeEventStore) DeleteEvent(ctx context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func TestCreateEventAlwaysEventType(t *testing.T) {
	store := newFakeEventStore()
	service := NewEventService(store)

	date := time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC)
	event, err := service.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:       "Annual Meetup",
		Description: "Get together",
		EventDate:   &date,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventTypeEvent, event.Type)
}

func TestListEventsExcludesPastAndUndated(t *testing.T) {
	store := newFakeEventStore()
	service := NewEventService(store)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -7)
	tomorrow := time.Now().AddDate(0, 0, 1)
	nextMonth := time.Now().AddDate(0, 1, 0)

	_, err := service.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Last Week Mixer", EventDate: &past})
	require.NoError(t, err)
	_, err = service.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Date TBA"})
	require.NoError(t, err)
	_, err = service.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Career Fair", EventDate: &nextMonth})
	require.NoError(t, err)
	_, err = service.CreateEvent(ctx, &dto.CreateEventRequest{Title: "Homecoming", EventDate: &tomorrow})
	require.NoError(t, err)

	events, err := service.ListEvents(ctx)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "Homecoming", events[0].Title)
	assert.Equal(t, "Career Fair", events[1].Title)
}

func TestUpdateSectionKeepsMissingFields(t *testing.T) {
	store := newFakeEventStore()
	service := NewEventService(store)

	title := "Upcoming Events"
	section, err := service.UpdateSection(context.Background(), &dto.UpdateSectionRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Upcoming Events", section.Title)
	assert.Equal(t, "What we host", section.Description)
}

func TestUpdateEventRejectsEmptyUpdate(t *testing.T) {
	store := newFakeEventStore()
	service := NewEventService(store)

	_, err := service.UpdateEvent(context.Background(), 2, &dto.UpdateEventRequest{})
	require.Error(t, err)

	var customErr *apperrors.CustomError
	assert.ErrorAs(t, err, &customErr)
}

func TestUpdateEventNotFound(t *testing.T) {
	service := NewEventService(newFakeEventStore())

	title := "Changed"
	_, err := service.UpdateEvent(context.Background(), 42, &dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestDeleteEventNotFound(t *testing.T) {
	service := NewEventService(newFakeEventStore())

	err := service.DeleteEvent(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
