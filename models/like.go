package models

// Like is a directed interaction record. A logical match is represented as
// two directed records (A→B and B→A) each flagged mutual, so the match count
// is always half the mutual-record count.
type Like struct {
	PK            string `dynamodbav:"PK" json:"PK"` // ✅ Partition Key: "PROFILE#<from>"
	SK            string `dynamodbav:"SK" json:"SK"` // ✅ Sort Key: "LIKE#<to>"
	FromProfileID string `dynamodbav:"fromProfileId" json:"fromProfileId"`
	ToProfileID   string `dynamodbav:"toProfileId" json:"toProfileId"`
	EventID       string `dynamodbav:"eventId" json:"eventId"` // Indexed via GSI
	IsMutual      bool   `dynamodbav:"isMutual" json:"isMutual"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// EventLikesTable is the DynamoDB table name for likes
const EventLikesTable = "EventLikes"
