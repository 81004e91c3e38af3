package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/recipe-search/internal/jwt"
	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the session token.
// Requests without a valid token are redirected to the login page.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "uri", r.RequestURI, "err", err)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			if _, err := tokener.GetClaims(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "uri", r.RequestURI, "err", err)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
