package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBookmarksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockBookmarkLister(ctrl)
	tokener := NewMockSessionTokener(ctrl)
	renderer := NewMockRenderer(ctrl)

	recipes := []models.Recipe{{ID: 5, Title: "custard"}, {ID: 5, Title: "custard"}}

	expectSession(tokener)
	svc.EXPECT().ListFull(gomock.Any(), int64(1)).Return(recipes, nil)
	svc.EXPECT().List(gomock.Any(), int64(1)).Return([]int64{5}, nil)
	expectRender(renderer, "bookmarks.html", func(data any) {
		page := data.(BookmarksPage)
		assert.Equal(t, recipes, page.Recipes)
		assert.Equal(t, map[int64]bool{5: true}, page.Bookmarked)
	})

	rr := httptest.NewRecorder()
	NewBookmarksHandler(svc, tokener, renderer)(rr, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	// Ошибка БД
	expectSession(tokener)
	svc.EXPECT().ListFull(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

	rr = httptest.NewRecorder()
	NewBookmarksHandler(svc, tokener, renderer)(rr, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestBookmarksHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockSessionTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))

	rr := httptest.NewRecorder()
	NewBookmarksHandler(NewMockBookmarkLister(ctrl), tokener, NewMockRenderer(ctrl))(
		rr, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestBookmarkAddHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		params           map[string]string
		mockSetup        func(svc *MockBookmarkAdder)
		expectedCode     int
		expectedLocation string
	}{
		{
			name:   "success",
			params: map[string]string{"page": "2", "id": "42"},
			mockSetup: func(svc *MockBookmarkAdder) {
				svc.EXPECT().Add(gomock.Any(), int64(1), int64(42)).Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/2/recipe-search",
		},
		{
			name:             "invalid recipe id",
			params:           map[string]string{"page": "2", "id": "abc"},
			mockSetup:        func(svc *MockBookmarkAdder) {},
			expectedCode:     http.StatusFound,
			expectedLocation: "/2/recipe-search",
		},
		{
			name:   "invalid page",
			params: map[string]string{"page": "x", "id": "42"},
			mockSetup: func(svc *MockBookmarkAdder) {
				svc.EXPECT().Add(gomock.Any(), int64(1), int64(42)).Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/1/recipe-search",
		},
		{
			name:   "service error",
			params: map[string]string{"page": "2", "id": "42"},
			mockSetup: func(svc *MockBookmarkAdder) {
				svc.EXPECT().Add(gomock.Any(), int64(1), int64(42)).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBookmarkAdder(ctrl)
			tokener := NewMockSessionTokener(ctrl)
			expectSession(tokener)
			tt.mockSetup(svc)

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), tt.params)
			rr := httptest.NewRecorder()
			NewBookmarkAddHandler(svc, tokener)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}

func TestBookmarkReleaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		params           map[string]string
		mockSetup        func(svc *MockBookmarkRemover)
		expectedCode     int
		expectedLocation string
	}{
		{
			name:   "from result page",
			params: map[string]string{"page": "3", "id": "42"},
			mockSetup: func(svc *MockBookmarkRemover) {
				svc.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/3/recipe-search",
		},
		{
			name:   "from bookmark list",
			params: map[string]string{"id": "42"},
			mockSetup: func(svc *MockBookmarkRemover) {
				svc.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/bookmarks",
		},
		{
			name:   "service error",
			params: map[string]string{"id": "42"},
			mockSetup: func(svc *MockBookmarkRemover) {
				svc.EXPECT().Remove(gomock.Any(), int64(1), int64(42)).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBookmarkRemover(ctrl)
			tokener := NewMockSessionTokener(ctrl)
			expectSession(tokener)
			tt.mockSetup(svc)

			req := withURLParams(httptest.NewRequest(http.MethodPost, "/", nil), tt.params)
			rr := httptest.NewRecorder()
			NewBookmarkReleaseHandler(svc, tokener)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}
