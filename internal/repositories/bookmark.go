package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

// BookmarkWriteRepository handles bookmark mutations. When a request-scoped
// transaction is present in the context it is used instead of the pool.
type BookmarkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookmarkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookmarkWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a bookmark row without checking for an existing one.
func (r *BookmarkWriteRepository) Save(ctx context.Context, userID, recipeID int64) error {
	const query = `
		INSERT INTO bookmark (user_id, recipe_id)
		VALUES ($1, $2)
	`

	args := []any{userID, recipeID}
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// SaveUnique inserts a bookmark row only if the user has not bookmarked the
// recipe yet. It reports whether a row was inserted.
func (r *BookmarkWriteRepository) SaveUnique(ctx context.Context, userID, recipeID int64) (bool, error) {
	const query = `
		INSERT INTO bookmark (user_id, recipe_id)
		SELECT $1::BIGINT, $2::BIGINT
		WHERE NOT EXISTS (
			SELECT 1 FROM bookmark WHERE user_id = $1 AND recipe_id = $2
		)
	`

	args := []any{userID, recipeID}
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes every bookmark row of the user for the recipe.
func (r *BookmarkWriteRepository) Delete(ctx context.Context, userID, recipeID int64) (int64, error) {
	const query = `
		DELETE FROM bookmark
		WHERE user_id = $1 AND recipe_id = $2
	`

	args := []any{userID, recipeID}
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

// BookmarkReadRepository handles bookmark reads
type BookmarkReadRepository struct {
	db *sqlx.DB
}

func NewBookmarkReadRepository(db *sqlx.DB) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db}
}

// GetRecipeIDsByUserID returns the recipe id of every bookmark row of the user
// in insertion order, duplicates included.
func (r *BookmarkReadRepository) GetRecipeIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	const query = `
		SELECT recipe_id
		FROM bookmark
		WHERE user_id = $1
		ORDER BY id ASC
	`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logQuery(query, []any{userID}, len(ids), err)

	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetRecipesByUserID returns the bookmarked recipes, one per bookmark row.
func (r *BookmarkReadRepository) GetRecipesByUserID(ctx context.Context, userID int64) ([]models.RecipeDB, error) {
	const query = `
		SELECT r.id, r.recipe_title, r.recipe_url, r.food_image_url, r.recipe_material
		FROM bookmark b
		JOIN recipe r ON r.id = b.recipe_id
		WHERE b.user_id = $1
		ORDER BY b.id ASC
	`

	var recipes []models.RecipeDB
	err := r.db.SelectContext(ctx, &recipes, query, userID)

	logQuery(query, []any{userID}, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}
