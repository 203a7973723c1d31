package models

// Profile is a temporary, event-scoped profile created when a user joins an
// event. It is deleted when the event ends or the user leaves.
type Profile struct {
	ProfileID      string `dynamodbav:"profileId" json:"profileId"` // ✅ Partition Key
	EventID        string `dynamodbav:"eventId" json:"eventId"`     // Indexed via GSI
	Name           string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Bio            string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	GenderIdentity string `dynamodbav:"genderIdentity,omitempty" json:"genderIdentity,omitempty"`
	Age            int    `dynamodbav:"age,omitempty" json:"age,omitempty"`
	PhotoKey       string `dynamodbav:"photoKey,omitempty" json:"photoKey,omitempty"` // S3 object key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// ProfilePreview is the trimmed card shape the discovery list renders.
type ProfilePreview struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	PhotoURI  string `json:"photoUri,omitempty"`
}

// EventProfilesTable is the DynamoDB table name for event-scoped profiles
const EventProfilesTable = "EventProfiles"

// EventIDIndex is the GSI shared by the per-event tables (PK: eventId)
const EventIDIndex = "eventId-index"
