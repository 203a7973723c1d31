package services

import (
	"context"
	"errors"
	"fmt"

	"mingle_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/charmbracelet/log"
)

var (
	// ErrEventNotFound means the event code matched nothing.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidPassword means the supplied event password did not match.
	ErrInvalidPassword = errors.New("invalid event password")
)

// ComputeStats derives a statistics snapshot from raw per-event record sets.
// Pure and deterministic: no I/O, never errors, and empty inputs yield a
// zero-valued snapshot. Malformed records simply match no predicate.
func ComputeStats(profiles []models.Profile, likes []models.Like, messages []models.Message) models.StatsSnapshot {
	snapshot := models.StatsSnapshot{
		TotalProfiles: len(profiles),
		TotalMessages: len(messages),
	}

	// Mutual likes arrive as reciprocal directed pairs, so one logical match
	// is two records. An odd count is a writer-side anomaly; floor division
	// is the defined behavior, not something to repair here.
	mutualLikes := 0
	for _, l := range likes {
		if l.IsMutual {
			mutualLikes++
		}
	}
	snapshot.TotalMatches = mutualLikes / 2

	// A profile is active once it appears on either side of any like or
	// message. Index by profile id rather than rescanning per profile.
	interacted := make(map[string]struct{}, len(profiles))
	mark := func(id string) {
		// Records with missing ids match no profile.
		if id != "" {
			interacted[id] = struct{}{}
		}
	}
	for _, l := range likes {
		mark(l.FromProfileID)
		mark(l.ToProfileID)
	}
	for _, m := range messages {
		mark(m.FromProfileID)
		mark(m.ToProfileID)
	}

	for _, p := range profiles {
		if _, ok := interacted[p.ProfileID]; ok {
			snapshot.ActiveUsers++
		}

		// Controlled vocabulary; everything else is the catch-all bucket.
		switch p.GenderIdentity {
		case "man":
			snapshot.GenderDistribution.Male++
		case "woman":
			snapshot.GenderDistribution.Female++
		default:
			snapshot.GenderDistribution.Other++
		}

		// Ages under 18 stay in totalProfiles but land in no band.
		switch {
		case p.Age >= 18 && p.Age <= 25:
			snapshot.AgeDistribution.Age18To25++
		case p.Age >= 26 && p.Age <= 35:
			snapshot.AgeDistribution.Age26To35++
		case p.Age >= 36 && p.Age <= 45:
			snapshot.AgeDistribution.Age36To45++
		case p.Age > 45:
			snapshot.AgeDistribution.Age45Plus++
		}
	}

	if snapshot.TotalProfiles > 0 {
		// Unrounded; presentation rounding belongs to the dashboard.
		snapshot.EngagementRate = float64(snapshot.ActiveUsers) / float64(snapshot.TotalProfiles) * 100
	}

	return snapshot
}

// StatsService fetches an event's raw collections and aggregates them into a
// snapshot for the dashboard.
type StatsService struct {
	Dynamo *DynamoService
	Log    *log.Logger
}

// GetEventStats authenticates against the event record, fetches the event's
// profiles, likes, and messages, and returns the computed snapshot along
// with the event name.
func (s *StatsService) GetEventStats(ctx context.Context, eventID, password string) (*models.StatsSnapshot, string, error) {
	key := map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	item, err := s.Dynamo.GetItem(ctx, models.EventsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, "", ErrEventNotFound
		}
		return nil, "", fmt.Errorf("failed to fetch event: %w", err)
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Password != password {
		return nil, "", ErrInvalidPassword
	}

	profiles, err := s.fetchProfiles(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	likes, err := s.fetchLikes(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	messages, err := s.fetchMessages(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	snapshot := ComputeStats(profiles, likes, messages)
	s.Log.Info("Computed event stats",
		"eventId", eventID,
		"profiles", snapshot.TotalProfiles,
		"matches", snapshot.TotalMatches,
		"engagement", snapshot.EngagementRate)

	return &snapshot, event.Name, nil
}

func (s *StatsService) fetchProfiles(ctx context.Context, eventID string) ([]models.Profile, error) {
	items, err := s.queryByEvent(ctx, models.EventProfilesTable, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	var profiles []models.Profile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}
	return profiles, nil
}

func (s *StatsService) fetchLikes(ctx context.Context, eventID string) ([]models.Like, error) {
	items, err := s.queryByEvent(ctx, models.EventLikesTable, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}

	var likes []models.Like
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal likes: %w", err)
	}
	return likes, nil
}

func (s *StatsService) fetchMessages(ctx context.Context, eventID string) ([]models.Message, error) {
	items, err := s.queryByEvent(ctx, models.EventMessagesTable, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return messages, nil
}

func (s *StatsService) queryByEvent(ctx context.Context, table, eventID string) ([]map[string]types.AttributeValue, error) {
	keyCondition := "eventId = :eventId"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
	}
	return s.Dynamo.QueryItemsWithIndex(ctx, table, models.EventIDIndex, keyCondition, expressionValues, nil)
}
