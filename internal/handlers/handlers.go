package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/sbilibin2017/recipe-search/internal/jwt"
	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// Renderer renders an HTML page by name.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// SessionTokener reads the session claims of a request.
type SessionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// render writes the page with status 200, or a 500 when rendering fails.
func render(w http.ResponseWriter, renderer Renderer, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, data); err != nil {
		logger.Log.Errorw("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// sessionClaims returns the claims of the request, redirecting to the login
// page when there are none.
func sessionClaims(w http.ResponseWriter, r *http.Request, tokener SessionTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Infow("failed to get token from request", "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return nil, false
	}

	return claims, true
}

func internalError(w http.ResponseWriter) {
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
