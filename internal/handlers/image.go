package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/sbilibin2017/recipe-search/internal/services"
)

// maxUploadSize bounds the size of an uploaded photo.
const maxUploadSize = 10 << 20

// ImageSearcher detects and translates the labels of an uploaded photo.
type ImageSearcher interface {
	SearchByImage(ctx context.Context, filename string, r io.Reader) (*models.ImageSearchResult, error)
}

// ImageUploadPage is the data of the photo upload form.
type ImageUploadPage struct {
	ErrorMessage string
}

// NewImageUploadHandler returns an HTTP handler rendering the photo upload form.
// @Summary Photo upload form
// @Tags image
// @Produce html
// @Success 200 {string} string "Upload form"
// @Router /image-upload [get]
func NewImageUploadHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, "image-upload.html", ImageUploadPage{})
	}
}

// NewImageResultHandler returns an HTTP handler rendering an empty photo
// search page.
// @Summary Photo search page
// @Tags image
// @Produce html
// @Success 200 {string} string "Empty result page"
// @Router /image-search [get]
func NewImageResultHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, "image-search.html", &models.ImageSearchResult{})
	}
}

// NewImageSearchHandler returns an HTTP handler that stores an uploaded photo
// and renders its translated labels.
// @Summary Search by photo
// @Description Detects labels on the photo and translates them.
// @Tags image
// @Accept multipart/form-data
// @Produce html
// @Param img formData file true "Photo"
// @Success 200 {string} string "Labels with scores"
// @Router /image-search [post]
// @Router /image-upload [post]
func NewImageSearchHandler(svc ImageSearcher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, header, err := r.FormFile("img")
		if err != nil {
			logger.Log.Warnw("no image in upload", "error", err)
			render(w, renderer, "image-upload.html", ImageUploadPage{ErrorMessage: "Choose a photo to upload"})
			return
		}
		defer file.Close()

		result, err := svc.SearchByImage(r.Context(), header.Filename, file)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				render(w, renderer, "image-upload.html", ImageUploadPage{ErrorMessage: "Choose a photo to upload"})
				return
			}
			logger.Log.Errorw("failed to search by image", "filename", header.Filename, "error", err)
			internalError(w)
			return
		}

		render(w, renderer, "image-search.html", result)
	}
}
