package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// EventService manages the admin-facing event records the stats endpoint
// authenticates against.
type EventService struct {
	Dynamo *DynamoService
	Log    *log.Logger
}

// CreateEvent stores a new event. A missing event id gets a generated code.
func (s *EventService) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.Log.Info("Event created", "eventId", event.EventID, "name", event.Name)
	return &event, nil
}

// GetEvent fetches an event by its code; ErrEventNotFound when absent.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	key := map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.EventsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}

// Authenticate checks the supplied password against the stored event record.
// Returns the event on success so callers avoid a second lookup.
func (s *EventService) Authenticate(ctx context.Context, eventID, password string) (*models.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Password != password {
		return nil, ErrInvalidPassword
	}
	return event, nil
}

// ListEvents returns every event for the admin console.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.Dynamo.ScanWithFilter(ctx, models.EventsTable, nil, nil, &events); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	s.Log.Debug("Listed events", "count", len(events))
	return events, nil
}
