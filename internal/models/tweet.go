package models

import (
	"time"

	"github.com/google/uuid"
)

// TweetDB represents a tweet row in the database
type TweetDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                // Primary key, generated by the database
	Title     string    `json:"title" db:"title"`          // Title, at most 256 characters
	Content   string    `json:"content" db:"content"`      // Body, at most 512 characters
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Insert timestamp, never updated
	CreatedBy uuid.UUID `json:"createdBy" db:"created_by"` // Author, references users.id
}

// TweetListItem is the projection returned by tweets.all
// swagger:model TweetListItem
type TweetListItem struct {
	// Tweet ID
	// example: 2f0c5a8e-6d8e-4a36-9e0e-1b5d0f7b7c11
	ID uuid.UUID `json:"id" db:"id"`

	// Title
	// example: Hello World
	Title string `json:"title" db:"title"`

	// Creation time
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Author is the joined user shown on a tweet
// swagger:model Author
type Author struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Display name
	// example: John Doe
	Name string `json:"name"`
}

// TweetDetail is the full record returned by tweets.one
// swagger:model TweetDetail
type TweetDetail struct {
	// Tweet ID
	ID uuid.UUID `json:"id" db:"id"`

	// Title
	// example: Hello World
	Title string `json:"title" db:"title"`

	// Content
	// example: This is a test tweet.
	Content string `json:"content" db:"content"`

	// Creation time
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Author
	Author Author `json:"author"`
}

// CreateTweetRequest represents the JSON body for tweets.create.
// Server-owned fields (id, createdAt, createdBy) have no place here and are dropped on decode.
// swagger:model CreateTweetRequest
type CreateTweetRequest struct {
	// Title
	// required: true
	// example: Hello World
	Title string `json:"title"`

	// Content
	// required: true
	// example: This is a test tweet.
	Content string `json:"content"`
}

// TweetIDRequest represents the JSON body for tweets.delete
// swagger:model TweetIDRequest
type TweetIDRequest struct {
	// Tweet ID
	// required: true
	ID string `json:"id"`
}

// EmptyResponse is the output of mutations
// swagger:model EmptyResponse
type EmptyResponse struct{}
