package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// CookieSetter stores the session token in the response.
type CookieSetter interface {
	SetCookie(w http.ResponseWriter, token string)
}

// LoginPage is the data of the login form.
type LoginPage struct {
	Username     string
	ErrorMessage string
}

const credentialsErrorMessage = "The username or password you entered is incorrect"

// NewLoginPageHandler returns an HTTP handler rendering the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Param error query string false "Error code, credentials"
// @Param username query string false "Username to prefill"
// @Success 200 {string} string "Login form"
// @Router /login [get]
func NewLoginPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := LoginPage{Username: r.URL.Query().Get("username")}
		if r.URL.Query().Get("error") == "credentials" {
			page.ErrorMessage = credentialsErrorMessage
		}
		render(w, renderer, "login.html", page)
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and store the session token in the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to / on success, /login?error=credentials on failure"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies CookieSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		password := r.FormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				http.Redirect(w, r, "/login?error=credentials&username="+url.QueryEscape(username), http.StatusFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				internalError(w)
			}
			return
		}

		cookies.SetCookie(w, token)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
