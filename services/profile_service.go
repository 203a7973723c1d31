package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mingle_server/models"
	"mingle_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrProfileNotFound means the profile id matched nothing.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages event-scoped temporary profiles.
type ProfileService struct {
	Dynamo *DynamoService
	Images *S3Service
	Log    *log.Logger
}

// CreateProfile stores a new event-scoped profile.
func (ps *ProfileService) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if profile.ProfileID == "" {
		profile.ProfileID = uuid.New().String()
	}
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Dynamo.PutItem(ctx, models.EventProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	ps.Log.Info("Profile created", "profileId", profile.ProfileID, "eventId", profile.EventID)
	return &profile, nil
}

// GetProfile retrieves a profile by id.
func (ps *ProfileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"profileId": &types.AttributeValueMemberS{Value: profileID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.EventProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetProfilesByEvent fetches every profile in an event via the eventId GSI.
func (ps *ProfileService) GetProfilesByEvent(ctx context.Context, eventID string) ([]models.Profile, error) {
	keyCondition := "eventId = :eventId"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	items, err := ps.Dynamo.QueryItemsWithIndex(ctx, models.EventProfilesTable, models.EventIDIndex, keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	var profiles []models.Profile
	if err := attributevalue.UnmarshalListOfMaps(items, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}
	return profiles, nil
}

// GetProfilePreviews builds the discovery cards for an event, resolving each
// photo through the image cache keyed by profile id (the per-participation
// identifier).
func (ps *ProfileService) GetProfilePreviews(ctx context.Context, eventID string) ([]models.ProfilePreview, error) {
	keyCondition := "eventId = :eventId"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
	}

	items, err := ps.Dynamo.QueryItemsWithIndex(ctx, models.EventProfilesTable, models.EventIDIndex, keyCondition, expressionValues, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	previews := make([]models.ProfilePreview, 0, len(items))
	for _, item := range items {
		preview := models.ProfilePreview{
			ProfileID: utils.ExtractString(item, "profileId"),
			Name:      utils.ExtractString(item, "name"),
			Age:       utils.ExtractInt(item, "age"),
		}
		if preview.ProfileID == "" {
			continue
		}

		uri, err := ps.Images.ResolveProfileImage(preview.ProfileID, utils.ExtractString(item, "photoKey"))
		if err != nil {
			// A card without a photo is still a card.
			ps.Log.Warn("Failed to resolve profile image", "profileId", preview.ProfileID, "err", err)
		} else {
			preview.PhotoURI = uri
		}

		previews = append(previews, preview)
	}

	return previews, nil
}

// DeleteProfile removes a profile record.
func (ps *ProfileService) DeleteProfile(ctx context.Context, profileID string) error {
	key := map[string]types.AttributeValue{
		"profileId": &types.AttributeValueMemberS{Value: profileID},
	}
	if err := ps.Dynamo.DeleteItem(ctx, models.EventProfilesTable, key); err != nil {
		return err
	}

	ps.Log.Info("Profile deleted", "profileId", profileID)
	return nil
}
