package models

// Tweet lifecycle event types
const (
	TweetCreated = "tweet.created"
	TweetDeleted = "tweet.deleted"
)

// TweetEvent is published to Kafka after a successful tweet mutation.
type TweetEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // TweetCreated or TweetDeleted
	TweetID   string `json:"tweet_id"`  // Affected tweet
	UserID    string `json:"user_id"`   // Caller that performed the mutation
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
