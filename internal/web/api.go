package web

import (
	"context"

	"github.com/sbilibin2017/tweet-board/internal/models"
)

// API is the subset of the RPC client the web front calls.
type API interface {
	TweetsAll(ctx context.Context) ([]models.TweetListItem, error)
	TweetsOne(ctx context.Context, id string) (*models.TweetDetail, error)
	TweetsCreate(ctx context.Context, title, content string) error
	TweetsDelete(ctx context.Context, id string) error
	Register(ctx context.Context, name, email, password string) (*models.SessionUser, error)
	Login(ctx context.Context, email, password string) (string, *models.SessionUser, error)
	Session(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

// APIFactory returns an API bound to token. An empty token makes anonymous calls.
type APIFactory func(token string) API
