package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

const recipeColumns = "id, recipe_title, recipe_url, food_image_url, recipe_material"

// RecipeReadRepository provides read-only access to the recipe catalog.
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// SearchByIngredients returns recipes whose material contains every term as a
// substring, ordered by id. An empty term matches every recipe.
func (r *RecipeReadRepository) SearchByIngredients(ctx context.Context, terms []string) ([]models.RecipeDB, error) {
	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms))
	for i, term := range terms {
		conds = append(conds, fmt.Sprintf("recipe_material LIKE $%d", i+1))
		args = append(args, likeContains(term))
	}

	query := "SELECT " + recipeColumns + " FROM recipe"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id ASC"

	var recipes []models.RecipeDB
	err := r.db.SelectContext(ctx, &recipes, query, args...)

	logQuery(query, args, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByIDs fetches the recipes with the given ids in catalog order.
// Unknown ids are silently absent from the result.
func (r *RecipeReadRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.RecipeDB, error) {
	if len(ids) == 0 {
		return []models.RecipeDB{}, nil
	}

	query, args, err := sqlx.In("SELECT "+recipeColumns+" FROM recipe WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var recipes []models.RecipeDB
	err = r.db.SelectContext(ctx, &recipes, query, args...)

	logQuery(query, []any{len(ids)}, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID returns a single recipe, or nil when the id is unknown.
func (r *RecipeReadRepository) GetByID(ctx context.Context, id int64) (*models.RecipeDB, error) {
	const query = `
		SELECT id, recipe_title, recipe_url, food_image_url, recipe_material
		FROM recipe
		WHERE id = $1
	`

	var recipe models.RecipeDB
	err := r.db.GetContext(ctx, &recipe, query, id)

	logQuery(query, []any{id}, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CountDistinctTitles counts distinct titles containing title.
func (r *RecipeReadRepository) CountDistinctTitles(ctx context.Context, title string) (int, error) {
	const query = `
		SELECT COUNT(DISTINCT recipe_title)
		FROM recipe
		WHERE recipe_title LIKE $1
	`

	args := []any{likeContains(title)}
	var count int
	err := r.db.GetContext(ctx, &count, query, args...)

	logQuery(query, args, count, err)

	return count, err
}

// SearchByTitle returns one recipe per distinct matching title, represented by
// the smallest id of that title, ordered by id.
func (r *RecipeReadRepository) SearchByTitle(ctx context.Context, title string, limit, offset int) ([]models.RecipeDB, error) {
	const query = `
		SELECT id, recipe_title, recipe_url, food_image_url, recipe_material
		FROM recipe
		WHERE id IN (
			SELECT MIN(id)
			FROM recipe
			WHERE recipe_title LIKE $1
			GROUP BY recipe_title
		)
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`

	args := []any{likeContains(title), limit, offset}
	var recipes []models.RecipeDB
	err := r.db.SelectContext(ctx, &recipes, query, args...)

	logQuery(query, args, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}
