package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/tweet-board/internal/jwt"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// TweetCreator defines the interface that the service must implement.
type TweetCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) error
}

// NewTweetsCreateHandler returns an HTTP handler for the tweets.create procedure.
// @Summary Create a tweet
// @Description Stores a tweet authored by the caller. id, createdAt and createdBy are assigned by the server.
// @Tags tweets
// @Accept json
// @Produce json
// @Param createTweetRequest body models.CreateTweetRequest true "Tweet"
// @Success 200 {object} models.EmptyResponse "Created"
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rpc/tweets.create [post]
// @Security BearerAuth
func NewTweetsCreateHandler(svc TweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := jwt.ClaimsFromContext(ctx)
		if claims == nil {
			observe(ProcedureTweetsCreate, CodeUnauthorized)
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
			return
		}

		var req models.CreateTweetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observe(ProcedureTweetsCreate, CodeValidationError)
			writeValidationError(w, errInvalidBody)
			return
		}

		if err := validation.ValidateCreateTweet(req.Title, req.Content); err != nil {
			verr, _ := validation.AsValidationError(err)
			observe(ProcedureTweetsCreate, CodeValidationError)
			writeValidationError(w, verr)
			return
		}

		if err := svc.Create(ctx, claims.UserID, req.Title, req.Content); err != nil {
			logger.Log.Errorw("internal server error", "procedure", ProcedureTweetsCreate, "err", err)
			observe(ProcedureTweetsCreate, CodeInternalServerError)
			writeInternalError(w)
			return
		}

		observe(ProcedureTweetsCreate, codeOK)
		writeJSON(w, http.StatusOK, models.EmptyResponse{})
	}
}
