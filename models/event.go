package models

// Event defines a time-boxed gathering with its own code and password.
// Profiles, likes, and messages are all scoped to an eventId.
type Event struct {
	EventID   string `dynamodbav:"eventId" json:"eventId"` // ✅ Partition Key (event code)
	Name      string `dynamodbav:"name" json:"name"`
	Password  string `dynamodbav:"password" json:"-"` // Never serialized to clients
	Venue     string `dynamodbav:"venue,omitempty" json:"venue,omitempty"`
	StartsAt  string `dynamodbav:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt    string `dynamodbav:"endsAt,omitempty" json:"endsAt,omitempty"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// EventsTable is the DynamoDB table name for events
const EventsTable = "Events"
