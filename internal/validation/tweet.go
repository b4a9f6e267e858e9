package validation

import (
	"github.com/google/uuid"
)

// Tweet length bounds, counted in characters.
const (
	TitleMinLength   = 3
	TitleMaxLength   = 256
	ContentMinLength = 5
	ContentMaxLength = 512
)

type createTweetInput struct {
	Title   string `json:"title" validate:"min=3,max=256"`
	Content string `json:"content" validate:"min=5,max=512"`
}

// ValidateCreateTweet checks a tweets.create payload.
func ValidateCreateTweet(title, content string) error {
	return structError(createTweetInput{Title: title, Content: content})
}

type tweetIDInput struct {
	ID string `json:"id" validate:"required,uuid_rfc4122"`
}

// ValidateTweetID checks a tweets.one / tweets.delete input and parses it.
func ValidateTweetID(id string) (uuid.UUID, error) {
	if err := structError(tweetIDInput{ID: id}); err != nil {
		return uuid.Nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &ValidationError{Violations: []Violation{{Field: "id", Rule: "uuid", Message: "Invalid UUID"}}}
	}
	return parsed, nil
}
