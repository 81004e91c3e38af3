package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/sbilibin2017/recipe-search/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/image-search", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	result := &models.ImageSearchResult{
		ImagePath: "/static/imgs/20240301123045.123456.jpg",
		Labels:    []models.Label{{Description: "卵", Score: 0.9}},
	}

	tests := []struct {
		name         string
		req          func(t *testing.T) *http.Request
		mockSetup    func(svc *MockImageSearcher, renderer *MockRenderer)
		expectedCode int
	}{
		{
			name: "success",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "img", "egg.jpg", []byte("jpeg"))
			},
			mockSetup: func(svc *MockImageSearcher, renderer *MockRenderer) {
				svc.EXPECT().SearchByImage(gomock.Any(), "egg.jpg", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, r io.Reader) (*models.ImageSearchResult, error) {
						data, err := io.ReadAll(r)
						require.NoError(t, err)
						assert.Equal(t, []byte("jpeg"), data)
						return result, nil
					})
				expectRender(renderer, "image-search.html", func(data any) {
					assert.Equal(t, result, data)
				})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing file",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "", "", nil)
			},
			mockSetup: func(svc *MockImageSearcher, renderer *MockRenderer) {
				expectRender(renderer, "image-upload.html", func(data any) {
					assert.NotEmpty(t, data.(ImageUploadPage).ErrorMessage)
				})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "empty file",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "img", "empty.jpg", nil)
			},
			mockSetup: func(svc *MockImageSearcher, renderer *MockRenderer) {
				svc.EXPECT().SearchByImage(gomock.Any(), "empty.jpg", gomock.Any()).Return(nil, services.ErrValidation)
				expectRender(renderer, "image-upload.html", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "service error",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "img", "egg.jpg", []byte("jpeg"))
			},
			mockSetup: func(svc *MockImageSearcher, renderer *MockRenderer) {
				svc.EXPECT().SearchByImage(gomock.Any(), "egg.jpg", gomock.Any()).Return(nil, errors.New("vision error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockImageSearcher(ctrl)
			renderer := NewMockRenderer(ctrl)
			tt.mockSetup(svc, renderer)

			rr := httptest.NewRecorder()
			NewImageSearchHandler(svc, renderer)(rr, tt.req(t))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestImagePageHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := NewMockRenderer(ctrl)

	expectRender(renderer, "image-upload.html", nil)
	rr := httptest.NewRecorder()
	NewImageUploadHandler(renderer)(rr, httptest.NewRequest(http.MethodGet, "/image-upload", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	expectRender(renderer, "image-search.html", func(data any) {
		assert.Equal(t, &models.ImageSearchResult{}, data)
	})
	rr = httptest.NewRecorder()
	NewImageResultHandler(renderer)(rr, httptest.NewRequest(http.MethodGet, "/image-search", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
