package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

// BookmarkIDLister returns the ids of the recipes a user bookmarked.
type BookmarkIDLister interface {
	List(ctx context.Context, userID int64) ([]int64, error)
}

// BookmarkLister reads the bookmarks of a user.
type BookmarkLister interface {
	BookmarkIDLister
	ListFull(ctx context.Context, userID int64) ([]models.Recipe, error)
}

// BookmarkAdder bookmarks a recipe.
type BookmarkAdder interface {
	Add(ctx context.Context, userID, recipeID int64) error
}

// BookmarkRemover removes a bookmark.
type BookmarkRemover interface {
	Remove(ctx context.Context, userID, recipeID int64) error
}

// BookmarksPage is the data of the bookmark list.
type BookmarksPage struct {
	Recipes    []models.Recipe // One entry per bookmark
	Bookmarked map[int64]bool  // Bookmarked recipe ids
}

// NewBookmarksHandler returns an HTTP handler listing the user's bookmarked recipes.
// @Summary Bookmarked recipes
// @Tags bookmarks
// @Produce html
// @Success 200 {string} string "Bookmark list"
// @Router /bookmarks [get]
func NewBookmarksHandler(svc BookmarkLister, tokener SessionTokener, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r, tokener)
		if !ok {
			return
		}

		recipes, err := svc.ListFull(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bookmarks", "userID", claims.UserID, "error", err)
			internalError(w)
			return
		}

		bookmarked, err := bookmarkedSet(r.Context(), svc, claims.UserID)
		if err != nil {
			internalError(w)
			return
		}

		render(w, renderer, "bookmarks.html", BookmarksPage{
			Recipes:    recipes,
			Bookmarked: bookmarked,
		})
	}
}

// NewBookmarkAddHandler returns an HTTP handler bookmarking a recipe from a
// result page and redirecting back to that page.
// @Summary Bookmark a recipe
// @Tags bookmarks
// @Param page path int true "Result page to return to"
// @Param id path int true "Recipe id"
// @Success 302 {string} string "Redirect to /{page}/recipe-search"
// @Router /{page}/{id}/bookmark [post]
func NewBookmarkAddHandler(svc BookmarkAdder, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r, tokener)
		if !ok {
			return
		}

		back := bookmarkReturnPath(r)

		recipeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid recipe id", "id", chi.URLParam(r, "id"))
			http.Redirect(w, r, back, http.StatusFound)
			return
		}

		if err := svc.Add(r.Context(), claims.UserID, recipeID); err != nil {
			logger.Log.Errorw("failed to add bookmark", "userID", claims.UserID, "recipeID", recipeID, "error", err)
			internalError(w)
			return
		}

		http.Redirect(w, r, back, http.StatusFound)
	}
}

// NewBookmarkReleaseHandler returns an HTTP handler removing a bookmark.
// It redirects to the result page named in the path, or to the bookmark list.
// @Summary Remove a bookmark
// @Tags bookmarks
// @Param page path int false "Result page to return to"
// @Param id path int true "Recipe id"
// @Success 302 {string} string "Redirect to /{page}/recipe-search or /bookmarks"
// @Router /{page}/{id}/bookmark-release [post]
// @Router /{id}/bookmark-release [post]
func NewBookmarkReleaseHandler(svc BookmarkRemover, tokener SessionTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r, tokener)
		if !ok {
			return
		}

		back := bookmarkReturnPath(r)

		recipeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid recipe id", "id", chi.URLParam(r, "id"))
			http.Redirect(w, r, back, http.StatusFound)
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, recipeID); err != nil {
			logger.Log.Errorw("failed to remove bookmark", "userID", claims.UserID, "recipeID", recipeID, "error", err)
			internalError(w)
			return
		}

		http.Redirect(w, r, back, http.StatusFound)
	}
}

func bookmarkReturnPath(r *http.Request) string {
	page := chi.URLParam(r, "page")
	if page == "" {
		return "/bookmarks"
	}
	if n, err := strconv.Atoi(page); err != nil || n < 1 {
		return "/1/recipe-search"
	}
	return fmt.Sprintf("/%s/recipe-search", page)
}

func bookmarkedSet(ctx context.Context, svc BookmarkIDLister, userID int64) (map[int64]bool, error) {
	ids, err := svc.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarked ids", "userID", userID, "error", err)
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
