package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
)

// TweetsLister defines the interface that the service must implement.
type TweetsLister interface {
	All(ctx context.Context) ([]models.TweetListItem, error)
}

// NewTweetsAllHandler returns an HTTP handler for the tweets.all procedure.
// @Summary List tweets
// @Description Returns every tweet (id, title, createdAt), newest first. There is no pagination.
// @Tags tweets
// @Produce json
// @Success 200 {array} models.TweetListItem "Tweets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /rpc/tweets.all [get]
// @Security BearerAuth
func NewTweetsAllHandler(svc TweetsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweets, err := svc.All(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "procedure", ProcedureTweetsAll, "err", err)
			observe(ProcedureTweetsAll, CodeInternalServerError)
			writeInternalError(w)
			return
		}

		observe(ProcedureTweetsAll, codeOK)
		writeJSON(w, http.StatusOK, tweets)
	}
}
