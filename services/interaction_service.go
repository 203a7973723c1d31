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

// InteractionService records likes and messages. It owns the writer-side
// invariant behind the stats pipeline: a mutual like is always stored as two
// directed records, both flagged mutual.
type InteractionService struct {
	Dynamo *DynamoService
	Log    *log.Logger
}

func likeKey(from, to string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "PROFILE#" + from},
		"SK": &types.AttributeValueMemberS{Value: "LIKE#" + to},
	}
}

// GetLike retrieves a directed like record, or nil when none exists.
func (s *InteractionService) GetLike(ctx context.Context, from, to string) (*models.Like, error) {
	item, err := s.Dynamo.GetItem(ctx, models.EventLikesTable, likeKey(from, to))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var like models.Like
	if err := attributevalue.UnmarshalMap(item, &like); err != nil {
		return nil, fmt.Errorf("failed to unmarshal like: %w", err)
	}
	return &like, nil
}

// RecordLike writes the directed like from→to. When the reverse record
// to→from already exists, both records are flagged mutual in the same
// operation, which is what keeps the mutual count an even number for every
// well-formed write. Returns whether the like completed a match.
func (s *InteractionService) RecordLike(ctx context.Context, eventID, from, to string) (bool, error) {
	s.Log.Debug("Recording like", "eventId", eventID, "from", from, "to", to)

	reverse, err := s.GetLike(ctx, to, from)
	if err != nil {
		return false, fmt.Errorf("failed to check reverse like: %w", err)
	}
	isMutual := reverse != nil

	like := models.Like{
		PK:            "PROFILE#" + from,
		SK:            "LIKE#" + to,
		FromProfileID: from,
		ToProfileID:   to,
		EventID:       eventID,
		IsMutual:      isMutual,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.EventLikesTable, like); err != nil {
		return false, err
	}

	if isMutual && !reverse.IsMutual {
		updateExpression := "SET isMutual = :mutual"
		expressionValues := map[string]types.AttributeValue{
			":mutual": &types.AttributeValueMemberBOOL{Value: true},
		}
		if _, err := s.Dynamo.UpdateItem(ctx, models.EventLikesTable, updateExpression, likeKey(to, from), expressionValues, nil); err != nil {
			return false, fmt.Errorf("failed to flag reverse like mutual: %w", err)
		}
		s.Log.Info("Match formed", "eventId", eventID, "profiles", from+"+"+to)
	}

	return isMutual, nil
}

// RecordMessage stores a message; the stats pipeline only ever counts it.
func (s *InteractionService) RecordMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.MessageID == "" {
		message.MessageID = uuid.New().String()
	}
	message.SentAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Dynamo.PutItem(ctx, models.EventMessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}
	return &message, nil
}

// PurgeProfileLikes batch-deletes every outgoing like a profile wrote. Used
// when a profile leaves an event.
func (s *InteractionService) PurgeProfileLikes(ctx context.Context, profileID string) error {
	keyCondition := "PK = :pk"
	expressionValues := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: "PROFILE#" + profileID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.EventLikesTable, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return fmt.Errorf("failed to query likes for purge: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"PK": item["PK"],
					"SK": item["SK"],
				},
			},
		})
	}

	if err := s.Dynamo.BatchWriteItems(ctx, models.EventLikesTable, writeRequests); err != nil {
		return err
	}

	s.Log.Info("Purged outgoing likes", "profileId", profileID, "count", len(writeRequests))
	return nil
}
