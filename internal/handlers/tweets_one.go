package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/services"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// TweetGetter defines the interface that the service must implement.
type TweetGetter interface {
	One(ctx context.Context, id uuid.UUID) (*models.TweetDetail, error)
}

// NewTweetsOneHandler returns an HTTP handler for the tweets.one procedure.
// @Summary Get a tweet
// @Description Returns one tweet with its author. Public.
// @Tags tweets
// @Produce json
// @Param id query string true "Tweet ID (UUID)"
// @Success 200 {object} models.TweetDetail "Tweet"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id / no such tweet"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rpc/tweets.one [get]
func NewTweetsOneHandler(svc TweetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := r.URL.Query().Get("id")
		id, err := validation.ValidateTweetID(rawID)
		if err != nil {
			verr, _ := validation.AsValidationError(err)
			observe(ProcedureTweetsOne, CodeValidationError)
			writeValidationError(w, verr)
			return
		}

		tweet, err := svc.One(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTweetNotFound) {
				observe(ProcedureTweetsOne, CodeBadRequest)
				writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("No such tweet with ID %s", rawID))
				return
			}
			logger.Log.Errorw("internal server error", "procedure", ProcedureTweetsOne, "err", err)
			observe(ProcedureTweetsOne, CodeInternalServerError)
			writeInternalError(w)
			return
		}

		observe(ProcedureTweetsOne, codeOK)
		writeJSON(w, http.StatusOK, tweet)
	}
}
