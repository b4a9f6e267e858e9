package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/metrics"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/repositories"
)

// ErrTweetNotFound is returned, wrapped with the requested id, when a tweet does not exist.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetReader defines read-only operations for tweets.
type TweetReader interface {
	ListTweets(ctx context.Context) ([]models.TweetListItem, error)
	GetTweet(ctx context.Context, id uuid.UUID) (*models.TweetDetail, error)
}

// TweetWriter defines write operations for tweets.
type TweetWriter interface {
	InsertTweet(ctx context.Context, title, content string, authorID uuid.UUID) (uuid.UUID, error)
	DeleteTweet(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TweetService implements the tweets.* procedures and publishes lifecycle events.
type TweetService struct {
	reader      TweetReader
	writer      TweetWriter
	kafkaWriter KafkaWriter
}

// NewTweetService creates a new TweetService. kafkaWriter may be nil.
func NewTweetService(reader TweetReader, writer TweetWriter, kafkaWriter KafkaWriter) *TweetService {
	return &TweetService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a tweet event to Kafka. Failures are only logged.
func (s *TweetService) publishEvent(ctx context.Context, event models.TweetEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		metrics.TweetEventsTotal.WithLabelValues(event.Type, "skipped").Inc()
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal tweet event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TweetID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish tweet event to Kafka", "event_id", event.EventID, "error", err)
		metrics.TweetEventsTotal.WithLabelValues(event.Type, "error").Inc()
	} else {
		logger.Log.Infow("Tweet event published to Kafka", "event_id", event.EventID, "type", event.Type, "tweet_id", event.TweetID)
		metrics.TweetEventsTotal.WithLabelValues(event.Type, "ok").Inc()
	}
}

func newTweetEvent(eventType string, tweetID, userID uuid.UUID) models.TweetEvent {
	return models.TweetEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		TweetID:   tweetID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}
}

// All returns every tweet, newest first.
func (s *TweetService) All(ctx context.Context) ([]models.TweetListItem, error) {
	tweets, err := s.reader.ListTweets(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tweets", "error", err)
		return nil, err
	}
	return tweets, nil
}

// One returns the tweet with its author.
func (s *TweetService) One(ctx context.Context, id uuid.UUID) (*models.TweetDetail, error) {
	tweet, err := s.reader.GetTweet(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTweetNotFound, id)
		}
		logger.Log.Errorw("failed to get tweet", "tweetID", id, "error", err)
		return nil, err
	}
	return tweet, nil
}

// Create stores a tweet authored by userID. Input must already be validated.
func (s *TweetService) Create(ctx context.Context, userID uuid.UUID, title, content string) error {
	id, err := s.writer.InsertTweet(ctx, title, content, userID)
	if err != nil {
		logger.Log.Errorw("failed to insert tweet", "userID", userID, "error", err)
		return err
	}

	s.publishEvent(ctx, newTweetEvent(models.TweetCreated, id, userID))
	return nil
}

// Delete removes a tweet. Any authenticated user may delete any tweet.
func (s *TweetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.writer.DeleteTweet(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrTweetNotFound, id)
		}
		logger.Log.Errorw("failed to delete tweet", "tweetID", id, "userID", userID, "error", err)
		return err
	}

	s.publishEvent(ctx, newTweetEvent(models.TweetDeleted, id, userID))
	return nil
}
