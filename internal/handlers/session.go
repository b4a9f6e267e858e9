package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/tweet-board/internal/jwt"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
)

// SessionGetter defines the interface that the service must implement.
type SessionGetter interface {
	Session(ctx context.Context, userID uuid.UUID) (*models.Session, error)
}

// NewSessionHandler returns an HTTP handler describing the caller's session.
// It relies on OptionalAuthMiddleware and answers null for anonymous callers.
// @Summary Current session
// @Description Returns the signed-in user, or null
// @Tags auth
// @Produce json
// @Success 200 {object} models.Session "Session or null"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/session [get]
func NewSessionHandler(svc SessionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := jwt.ClaimsFromContext(ctx)
		if claims == nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		session, err := svc.Session(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}
