package services

import (
	"context"
	"io"
	"time"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

const imageNameLayout = "20060102150405.000000"

// ImageStore persists uploaded images and returns the path they are served from.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// LabelDetector detects labels on an image.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]models.Label, error)
}

// Translator translates text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// ImageService searches recipes by photo: it stores the upload, detects its
// labels and translates them into the catalog language.
type ImageService struct {
	store      ImageStore
	detector   LabelDetector
	translator Translator
	target     string
	now        func() time.Time
}

// NewImageService creates a new ImageService translating labels into target.
func NewImageService(store ImageStore, detector LabelDetector, translator Translator, target string) *ImageService {
	return &ImageService{
		store:      store,
		detector:   detector,
		translator: translator,
		target:     target,
		now:        time.Now,
	}
}

// SearchByImage stores the uploaded image under a timestamped name and returns
// its translated labels, best match first.
func (s *ImageService) SearchByImage(ctx context.Context, filename string, r io.Reader) (*models.ImageSearchResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		logger.Log.Errorw("failed to read uploaded image", "filename", filename, "error", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrValidation
	}

	name := s.now().Format(imageNameLayout) + ".jpg"
	path, err := s.store.Save(ctx, name, data)
	if err != nil {
		logger.Log.Errorw("failed to store uploaded image", "filename", filename, "name", name, "error", err)
		return nil, err
	}

	labels, err := s.detector.DetectLabels(ctx, data)
	if err != nil {
		logger.Log.Errorw("failed to detect labels", "path", path, "error", err)
		return nil, err
	}

	translated := make([]models.Label, 0, len(labels))
	for _, l := range labels {
		text, err := s.translator.Translate(ctx, l.Description, s.target)
		if err != nil {
			logger.Log.Errorw("failed to translate label", "label", l.Description, "target", s.target, "error", err)
			return nil, err
		}
		translated = append(translated, models.Label{Description: text, Score: l.Score})
	}

	logger.Log.Infow("image labels detected", "filename", filename, "path", path, "labels", len(translated))

	return &models.ImageSearchResult{
		ImagePath: path,
		Labels:    translated,
	}, nil
}
