package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/tweet-board/internal/jwt"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
)

// Logouter defines the interface that the service must implement.
type Logouter interface {
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Logout
// @Description Revokes the bearer token until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} models.EmptyResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := jwt.ClaimsFromContext(ctx)
		if claims == nil || claims.ExpiresAt == nil {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, models.EmptyResponse{})
	}
}
