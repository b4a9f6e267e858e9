package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/tweet-board/internal/jwt"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/services"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// TweetDeleter defines the interface that the service must implement.
type TweetDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NewTweetsDeleteHandler returns an HTTP handler for the tweets.delete procedure.
// @Summary Delete a tweet
// @Description Hard-deletes a tweet by id. Any authenticated user may delete any tweet.
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetIDRequest body models.TweetIDRequest true "Tweet ID"
// @Success 200 {object} models.EmptyResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id / no such tweet"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rpc/tweets.delete [post]
// @Security BearerAuth
func NewTweetsDeleteHandler(svc TweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := jwt.ClaimsFromContext(ctx)
		if claims == nil {
			observe(ProcedureTweetsDelete, CodeUnauthorized)
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
			return
		}

		var req models.TweetIDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observe(ProcedureTweetsDelete, CodeValidationError)
			writeValidationError(w, errInvalidBody)
			return
		}

		id, err := validation.ValidateTweetID(req.ID)
		if err != nil {
			verr, _ := validation.AsValidationError(err)
			observe(ProcedureTweetsDelete, CodeValidationError)
			writeValidationError(w, verr)
			return
		}

		if err := svc.Delete(ctx, claims.UserID, id); err != nil {
			if errors.Is(err, services.ErrTweetNotFound) {
				observe(ProcedureTweetsDelete, CodeBadRequest)
				writeError(w, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("No such tweet with id %s", req.ID))
				return
			}
			logger.Log.Errorw("internal server error", "procedure", ProcedureTweetsDelete, "err", err)
			observe(ProcedureTweetsDelete, CodeInternalServerError)
			writeInternalError(w)
			return
		}

		observe(ProcedureTweetsDelete, codeOK)
		writeJSON(w, http.StatusOK, models.EmptyResponse{})
	}
}
