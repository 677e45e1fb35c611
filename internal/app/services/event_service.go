package services

import (
	"context"
	"time"

	"github.com/alumnihub/portal-api/internal/app/models"
	"github.com/alumnihub/portal-api/internal/app/models/dto"
	"github.com/alumnihub/portal-api/internal/pkg/apperrors"
	"github.com/alumnihub/portal-api/internal/pkg/helpers"
)

// EventService manages events and the events section header
type EventService struct {
	eventStore EventStore
}

// NewEventService creates a new EventService
func NewEventService(eventStore EventStore) *EventService {
	return &EventService{eventStore: eventStore}
}

// ListEvents retrieves events dated today or later, soonest first.
// Past and undated events never appear in the public list.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventStore.ListEvents(ctx, helpers.StartOfDay(time.Now()))
}

// GetSection retrieves the section header row
func (s *EventService) GetSection(ctx context.Context) (*models.Event, error) {
	return s.eventStore.GetSection(ctx)
}

// UpdateSection updates the section header. Missing fields keep their
// current value.
func (s *EventService) UpdateSection(ctx context.Context, req *dto.UpdateSectionRequest) (*models.Event, error) {
	current, err := s.eventStore.GetSection(ctx)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := current.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := s.eventStore.UpdateSection(ctx, title, description); err != nil {
		return nil, err
	}

	return s.eventStore.GetSection(ctx)
}

// GetEvent retrieves a single event
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventStore.GetEventByID(ctx, id)
}

// CreateEvent adds a new event
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Type:        models.EventTypeEvent,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Venue:       req.Venue,
	}

	id, err := s.eventStore.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	return s.eventStore.GetEventByID(ctx, id)
}

// UpdateEvent partially updates an event
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EventDate != nil {
		updates["event_date"] = *req.EventDate
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("no fields to update")
	}

	if err := s.eventStore.UpdateEvent(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.eventStore.GetEventByID(ctx, id)
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventStore.DeleteEvent(ctx, id)
}
