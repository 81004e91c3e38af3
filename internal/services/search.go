package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

const (
	// MaxIngredientTerms is the fixed width of the ingredient search form.
	MaxIngredientTerms = 5
	// PageSize is the number of recipes shown on a result page.
	PageSize = 10
)

var (
	ErrMissingSearchContext = errors.New("no active search for session")
	ErrRecipeNotFound       = errors.New("recipe not found")
)

// RecipeReader defines read-only access to the recipe catalog.
type RecipeReader interface {
	SearchByIngredients(ctx context.Context, terms []string) ([]models.RecipeDB, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.RecipeDB, error)
	GetByID(ctx context.Context, id int64) (*models.RecipeDB, error)
	CountDistinctTitles(ctx context.Context, title string) (int, error)
	SearchByTitle(ctx context.Context, title string, limit, offset int) ([]models.RecipeDB, error)
}

// SearchSessionStore keeps the last search result of each login session.
// Get returns nil, nil when the session has no active search.
type SearchSessionStore interface {
	Save(ctx context.Context, sessionID string, search *models.SearchSession) error
	Get(ctx context.Context, sessionID string) (*models.SearchSession, error)
}

// SearchService implements ingredient and title search with paging.
type SearchService struct {
	recipes  RecipeReader
	sessions SearchSessionStore
}

// NewSearchService creates a new SearchService.
func NewSearchService(recipes RecipeReader, sessions SearchSessionStore) *SearchService {
	return &SearchService{
		recipes:  recipes,
		sessions: sessions,
	}
}

// SearchByIngredients finds recipes containing every submitted term and stores
// their ids as the session's current search, replacing any previous one.
// It returns the number of stored ids.
func (s *SearchService) SearchByIngredients(ctx context.Context, sessionID string, terms []string) (int, error) {
	padded, ok := PadTerms(terms)
	if !ok {
		return 0, ErrValidation
	}

	rows, err := s.recipes.SearchByIngredients(ctx, padded)
	if err != nil {
		logger.Log.Errorw("failed to search recipes by ingredients", "terms", padded, "error", err)
		return 0, err
	}

	unique := UniqueByTitle(rows)
	ids := make([]int64, 0, len(unique))
	for _, r := range unique {
		ids = append(ids, r.ID)
	}

	search := &models.SearchSession{
		Kind:      models.SearchKindIngredients,
		Terms:     padded,
		RecipeIDs: ids,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, sessionID, search); err != nil {
		logger.Log.Errorw("failed to store search session", "session_id", sessionID, "error", err)
		return 0, err
	}

	logger.Log.Infow("ingredient search stored", "session_id", sessionID, "terms", padded, "results", len(ids))

	return len(ids), nil
}

// ResultPage returns one page of the session's current ingredient search.
// Recipes are resolved again from the catalog and keep the stored order.
func (s *SearchService) ResultPage(ctx context.Context, sessionID string, page int) (*models.ResultPage, error) {
	search, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to load search session", "session_id", sessionID, "error", err)
		return nil, err
	}
	if search == nil {
		return nil, ErrMissingSearchContext
	}

	rows, err := s.recipes.GetByIDs(ctx, search.RecipeIDs)
	if err != nil {
		logger.Log.Errorw("failed to resolve search results", "session_id", sessionID, "error", err)
		return nil, err
	}

	ordered := orderByIDs(rows, search.RecipeIDs)
	total := len(ordered)

	return &models.ResultPage{
		Recipes: pageSlice(ordered, page),
		Page:    page,
		Pages:   ResultPageWindow(page, total),
		Last:    total / PageSize,
		Total:   total,
	}, nil
}

// SearchByTitle returns one page of recipes whose title contains query,
// one recipe per distinct title. Pages past the last one come back empty
// without querying the catalog.
func (s *SearchService) SearchByTitle(ctx context.Context, query string, page int) (*models.TitlePage, error) {
	if query == "" {
		return nil, ErrValidation
	}
	if page < 1 {
		page = 1
	}

	amount, err := s.recipes.CountDistinctTitles(ctx, query)
	if err != nil {
		logger.Log.Errorw("failed to count titles", "query", query, "error", err)
		return nil, err
	}
	pageAmount := (amount + PageSize - 1) / PageSize

	result := &models.TitlePage{
		Query:        query,
		Page:         page,
		PageList:     TitlePageWindow(page, pageAmount),
		RecipeAmount: amount,
		PageAmount:   pageAmount,
		Recipes:      []models.Recipe{},
	}
	if amount == 0 || page > pageAmount {
		return result, nil
	}

	rows, err := s.recipes.SearchByTitle(ctx, query, PageSize, (page-1)*PageSize)
	if err != nil {
		logger.Log.Errorw("failed to search recipes by title", "query", query, "page", page, "error", err)
		return nil, err
	}
	for _, r := range rows {
		result.Recipes = append(result.Recipes, ToRecipe(r))
	}

	return result, nil
}

// GetRecipe returns a single recipe by id.
func (s *SearchService) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	row, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrRecipeNotFound
	}
	recipe := ToRecipe(*row)
	return &recipe, nil
}

// PadTerms keeps the first MaxIngredientTerms terms and pads the list with
// empty, match-anything terms. Whitespace-only terms become empty.
// ok is false when no term carries text.
func PadTerms(terms []string) (padded []string, ok bool) {
	padded = make([]string, MaxIngredientTerms)
	for i := 0; i < MaxIngredientTerms && i < len(terms); i++ {
		if strings.TrimSpace(terms[i]) == "" {
			continue
		}
		padded[i] = terms[i]
		ok = true
	}
	return padded, ok
}

// UniqueByTitle drops every recipe whose title was already seen.
func UniqueByTitle(rows []models.RecipeDB) []models.RecipeDB {
	seen := make(map[string]struct{}, len(rows))
	unique := make([]models.RecipeDB, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.Title]; ok {
			continue
		}
		seen[r.Title] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// ResultPageWindow returns the interior page links of an ingredient search
// result page: max(2, page-3) up to but excluding min(total/10, page+4).
//
// The last page is total/10 rounded down, so a result count that is an exact
// multiple of ten shows one page fewer than it has.
func ResultPageWindow(page, total int) []int {
	from := max(2, page-3)
	to := total / PageSize
	if page < to-4 {
		to = page + 4
	}

	pages := []int{}
	for p := from; p < to; p++ {
		pages = append(pages, p)
	}
	return pages
}

// TitlePageWindow returns the page links of a title search page. The list
// always starts with 1, holds up to four interior pages and ends with
// pageAmount when there is at least one page.
func TitlePageWindow(page, pageAmount int) []int {
	var anchor int
	switch {
	case pageAmount-3 <= page:
		anchor = pageAmount - 1
	case page == 1:
		anchor = page + 4
	case page == 2:
		anchor = page + 3
	default:
		anchor = page + 2
	}

	interior := make([]int, 0, 4)
	for i := 0; i < 4 && anchor > 1; i++ {
		interior = append(interior, anchor)
		anchor--
	}

	pages := make([]int, 0, len(interior)+2)
	pages = append(pages, 1)
	for i := len(interior) - 1; i >= 0; i-- {
		pages = append(pages, interior[i])
	}
	if pageAmount > 0 && pageAmount > pages[len(pages)-1] {
		pages = append(pages, pageAmount)
	}
	return pages
}

// ParseMaterial turns a serialized ingredient list such as "['egg', 'milk']"
// into its items. Whitespace after each comma is kept.
func ParseMaterial(material string) []string {
	material = materialCleaner.Replace(material)
	return strings.Split(material, ",")
}

var materialCleaner = strings.NewReplacer("[", "", "]", "", "'", "")

// ToRecipe converts a catalog row into a Recipe with a parsed ingredient list.
func ToRecipe(r models.RecipeDB) models.Recipe {
	return models.Recipe{
		ID:       r.ID,
		Title:    r.Title,
		URL:      r.URL,
		ImageURL: r.ImageURL,
		Material: ParseMaterial(r.Material),
	}
}

func orderByIDs(rows []models.RecipeDB, ids []int64) []models.RecipeDB {
	byID := make(map[int64]models.RecipeDB, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	ordered := make([]models.RecipeDB, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// pageSlice returns the rows of a 1-based page, empty past the last page.
// The page is bounded before it is multiplied so huge values cannot wrap.
func pageSlice(rows []models.RecipeDB, page int) []models.RecipeDB {
	if page < 1 || page-1 >= (len(rows)+PageSize-1)/PageSize {
		return []models.RecipeDB{}
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(rows))
	return rows[start:end]
}
