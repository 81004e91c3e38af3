package handlers

import "net/http"

// NewIndexHandler returns an HTTP handler rendering the landing page.
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string "Landing page"
// @Success 302 {string} string "Redirect to /login without a session"
// @Router / [get]
func NewIndexHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, "index.html", nil)
	}
}
