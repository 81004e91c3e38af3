package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, confirmation string) error
}

// RegisterPage is the data of the registration form.
type RegisterPage struct {
	ErrorMessage string
}

// NewRegisterPageHandler returns an HTTP handler rendering the registration form.
// @Summary Registration form
// @Tags auth
// @Produce html
// @Param error query string false "Error code, duplicate"
// @Success 200 {string} string "Registration form"
// @Router /register [get]
func NewRegisterPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var page RegisterPage
		if r.URL.Query().Get("error") == "duplicate" {
			page.ErrorMessage = "The username is already registered"
		}
		render(w, renderer, "register.html", page)
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Password and confirmation must match. Password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param confirmation formData string true "Password confirmation"
// @Success 302 {string} string "Redirect to /login on success, back to /register on failure"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Register(
			r.Context(),
			r.FormValue("username"),
			r.FormValue("password"),
			r.FormValue("confirmation"),
		)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				http.Redirect(w, r, "/register", http.StatusFound)
			case errors.Is(err, services.ErrUserAlreadyExists):
				http.Redirect(w, r, "/register?error=duplicate", http.StatusFound)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				internalError(w)
			}
			return
		}

		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
