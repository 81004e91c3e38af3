package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// Logouter ends a login session.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// CookieClearer removes the session token from the client.
type CookieClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that forgets the session search
// state, clears the session cookie and redirects to the login page.
// @Summary Logout
// @Tags auth
// @Success 302 {string} string "Redirect to /login"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokener SessionTokener, cookies CookieClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if tokenStr, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
			if claims, err := tokener.GetClaims(ctx, tokenStr); err == nil {
				if err := svc.Logout(ctx, claims.SessionID); err != nil {
					logger.Log.Errorw("failed to logout", "userID", claims.UserID, "error", err)
				}
			}
		}

		cookies.ClearCookie(w)
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
