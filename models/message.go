package models

// Message is stored for delivery but only ever aggregated as an activity
// signal; the stats pipeline never reads Content.
type Message struct {
	MessageID     string `dynamodbav:"messageId" json:"messageId"` // ✅ Partition Key
	EventID       string `dynamodbav:"eventId" json:"eventId"`     // Indexed via GSI
	FromProfileID string `dynamodbav:"fromProfileId" json:"fromProfileId"`
	ToProfileID   string `dynamodbav:"toProfileId" json:"toProfileId"`
	Content       string `dynamodbav:"content,omitempty" json:"content,omitempty"`
	SentAt        string `dynamodbav:"sentAt" json:"sentAt"`
}

// EventMessagesTable is the DynamoDB table name for messages
const EventMessagesTable = "EventMessages"
