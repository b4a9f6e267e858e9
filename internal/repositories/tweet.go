package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/tweet-board/internal/models"
)

// TweetReadRepository handles tweet queries
type TweetReadRepository struct {
	db *sqlx.DB
}

func NewTweetReadRepository(db *sqlx.DB) *TweetReadRepository {
	return &TweetReadRepository{db: db}
}

// ListTweets returns every tweet, newest first. There is no pagination.
func (r *TweetReadRepository) ListTweets(ctx context.Context) ([]models.TweetListItem, error) {
	const query = `
		SELECT id, title, created_at
		FROM tweet
		ORDER BY created_at DESC
	`

	tweets := []models.TweetListItem{}
	err := r.db.SelectContext(ctx, &tweets, query)

	logQuery(query, nil, len(tweets), err)

	if err != nil {
		return nil, err
	}
	return tweets, nil
}

type tweetDetailRow struct {
	ID         uuid.UUID `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
}

// GetTweet returns one tweet joined with its author, or ErrNotFound.
func (r *TweetReadRepository) GetTweet(ctx context.Context, id uuid.UUID) (*models.TweetDetail, error) {
	const query = `
		SELECT t.id, t.title, t.content, t.created_at,
		       u.id AS author_id, u.name AS author_name
		FROM tweet t
		INNER JOIN users u ON t.created_by = u.id
		WHERE t.id = $1
	`

	var row tweetDetailRow
	err := r.db.GetContext(ctx, &row, query, id)

	logQuery(query, []any{id}, row.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.TweetDetail{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Author: models.Author{
			ID:   row.AuthorID,
			Name: row.AuthorName,
		},
	}, nil
}

// TweetWriteRepository handles tweet mutations
type TweetWriteRepository struct {
	db *sqlx.DB
}

func NewTweetWriteRepository(db *sqlx.DB) *TweetWriteRepository {
	return &TweetWriteRepository{db: db}
}

// InsertTweet stores a new tweet and returns its id. id and created_at are assigned by the database.
func (r *TweetWriteRepository) InsertTweet(ctx context.Context, title, content string, authorID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO tweet (title, content, created_by)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{title, content, authorID}

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// DeleteTweet removes a tweet, returning ErrNotFound when no row was deleted.
func (r *TweetWriteRepository) DeleteTweet(ctx context.Context, id uuid.UUID) error {
	const query = `
		DELETE FROM tweet
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
