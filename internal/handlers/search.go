package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/sbilibin2017/recipe-search/internal/services"
)

// IngredientSearcher runs an ingredient search for a login session.
type IngredientSearcher interface {
	SearchByIngredients(ctx context.Context, sessionID string, terms []string) (int, error)
}

// ResultPager pages through the session's ingredient search result.
type ResultPager interface {
	ResultPage(ctx context.Context, sessionID string, page int) (*models.ResultPage, error)
}

// TitleSearcher searches recipes by title.
type TitleSearcher interface {
	SearchByTitle(ctx context.Context, query string, page int) (*models.TitlePage, error)
}

// RecipeGetter looks up a single recipe.
type RecipeGetter interface {
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
}

// IngredientFormPage is the data of the ingredient search form.
type IngredientFormPage struct {
	Slots        []struct{} // One input per accepted term
	ErrorMessage string
}

// TitleFormPage is the data of the title search form.
type TitleFormPage struct {
	ErrorMessage string
}

// ResultPageView is the data of an ingredient search result page.
type ResultPageView struct {
	Result     *models.ResultPage
	Bookmarked map[int64]bool
}

func ingredientForm(message string) IngredientFormPage {
	return IngredientFormPage{
		Slots:        make([]struct{}, services.MaxIngredientTerms),
		ErrorMessage: message,
	}
}

// NewIngredientFormHandler returns an HTTP handler rendering the ingredient search form.
// @Summary Ingredient search form
// @Tags search
// @Produce html
// @Success 200 {string} string "Search form"
// @Router /food-recipe [get]
func NewIngredientFormHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, "food-recipe.html", ingredientForm(""))
	}
}

// NewIngredientSearchHandler returns an HTTP handler running an ingredient
// search and redirecting to its first result page.
// @Summary Search recipes by ingredients
// @Description Finds recipes containing every ingredient (up to five) and keeps the result for paging.
// @Tags search
// @Accept x-www-form-urlencoded
// @Produce html
// @Param foods formData []string true "Ingredients" collectionFormat(multi)
// @Success 302 {string} string "Redirect to /1/recipe-search"
// @Success 200 {string} string "Search form when no ingredient was given"
// @Router /food-recipe [post]
func NewIngredientSearchHandler(svc IngredientSearcher, tokener SessionTokener, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r, tokener)
		if !ok {
			return
		}

		if err := r.ParseForm(); err != nil {
			logger.Log.Warnw("failed to parse search form", "error", err)
			render(w, renderer, "food-recipe.html", ingredientForm("Enter at least one ingredient"))
			return
		}

		if _, err := svc.SearchByIngredients(r.Context(), claims.SessionID, r.PostForm["foods"]); err != nil {
			if errors.Is(err, services.ErrValidation) {
				render(w, renderer, "food-recipe.html", ingredientForm("Enter at least one ingredient"))
				return
			}
			logger.Log.Errorw("failed to search by ingredients", "userID", claims.UserID, "error", err)
			internalError(w)
			return
		}

		http.Redirect(w, r, "/1/recipe-search", http.StatusFound)
	}
}

// NewResultPageHandler returns an HTTP handler rendering a page of the
// session's ingredient search result.
// @Summary Ingredient search result page
// @Tags search
// @Produce html
// @Param page path int true "1-based page"
// @Success 200 {string} string "Result page"
// @Success 302 {string} string "Redirect to /food-recipe without an active search"
// @Router /{page}/recipe-search [get]
func NewResultPageHandler(svc ResultPager, bookmarks BookmarkIDLister, tokener SessionTokener, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := sessionClaims(w, r, tokener)
		if !ok {
			return
		}

		page, err := strconv.Atoi(chi.URLParam(r, "page"))
		if err != nil || page < 1 {
			http.Redirect(w, r, "/1/recipe-search", http.StatusFound)
			return
		}

		result, err := svc.ResultPage(r.Context(), claims.SessionID, page)
		if err != nil {
			if errors.Is(err, services.ErrMissingSearchContext) {
				http.Redirect(w, r, "/food-recipe", http.StatusFound)
				return
			}
			logger.Log.Errorw("failed to get result page", "userID", claims.UserID, "page", page, "error", err)
			internalError(w)
			return
		}

		bookmarked, err := bookmarkedSet(r.Context(), bookmarks, claims.UserID)
		if err != nil {
			internalError(w)
			return
		}

		render(w, renderer, "recipe-search.html", ResultPageView{
			Result:     result,
			Bookmarked: bookmarked,
		})
	}
}

// NewTitleFormHandler returns an HTTP handler rendering the title search form.
// @Summary Title search form
// @Tags search
// @Produce html
// @Success 200 {string} string "Search form"
// @Router /recipe-food [get]
func NewTitleFormHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, renderer, "recipe-food.html", TitleFormPage{})
	}
}

// NewTitleFormSubmitHandler returns an HTTP handler redirecting a submitted
// title to the first page of its search.
// @Summary Submit a title search
// @Tags search
// @Accept x-www-form-urlencoded
// @Produce html
// @Param cooking formData string true "Title fragment"
// @Success 302 {string} string "Redirect to /food-search?q=...&p=1"
// @Router /recipe-food [post]
func NewTitleFormSubmitHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cooking := r.FormValue("cooking")
		if cooking == "" {
			render(w, renderer, "recipe-food.html", TitleFormPage{ErrorMessage: "Enter a dish name"})
			return
		}

		http.Redirect(w, r, "/food-search?q="+url.QueryEscape(cooking)+"&p=1", http.StatusFound)
	}
}

// NewTitleSearchHandler returns an HTTP handler rendering a title search page.
// @Summary Search recipes by title
// @Description One recipe per distinct title, ten per page.
// @Tags search
// @Produce html
// @Param q query string true "Title fragment"
// @Param p query int false "1-based page" default(1)
// @Success 200 {string} string "Result page"
// @Success 302 {string} string "Redirect to /recipe-food without a query"
// @Router /food-search [get]
func NewTitleSearchHandler(svc TitleSearcher, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Redirect(w, r, "/recipe-food", http.StatusFound)
			return
		}

		page := 1
		if p := r.URL.Query().Get("p"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				http.Redirect(w, r, fmt.Sprintf("/food-search?q=%s&p=1", url.QueryEscape(query)), http.StatusFound)
				return
			}
			page = n
		}

		result, err := svc.SearchByTitle(r.Context(), query, page)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				http.Redirect(w, r, "/recipe-food", http.StatusFound)
				return
			}
			logger.Log.Errorw("failed to search by title", "query", query, "page", page, "error", err)
			internalError(w)
			return
		}

		render(w, renderer, "food-search.html", result)
	}
}

// NewRecipeDetailHandler returns an HTTP handler rendering a single recipe.
// @Summary Recipe detail
// @Tags search
// @Produce html
// @Param id query int true "Recipe id"
// @Success 200 {string} string "Recipe page"
// @Success 302 {string} string "Redirect to /recipe-food when the id is missing or unknown"
// @Router /foodlist [get]
func NewRecipeDetailHandler(svc RecipeGetter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Redirect(w, r, "/recipe-food", http.StatusFound)
			return
		}

		recipe, err := svc.GetRecipe(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrRecipeNotFound) {
				http.Redirect(w, r, "/recipe-food", http.StatusFound)
				return
			}
			logger.Log.Errorw("failed to get recipe", "id", id, "error", err)
			internalError(w)
			return
		}

		render(w, renderer, "foodlist.html", recipe)
	}
}
