package models

import "time"

// SearchKindIngredients marks a search session produced by the ingredient search form.
const SearchKindIngredients = "ingredients"

// SearchSession holds the result of the last search of a login session so that
// result pages can be requested later without repeating the query.
// A missing SearchSession means the user has no active search.
type SearchSession struct {
	Kind      string    `json:"kind"`       // Which form produced the result
	Terms     []string  `json:"terms"`      // Terms as submitted, padded to the fixed width
	RecipeIDs []int64   `json:"recipe_ids"` // Result ids, unique per title, in result order
	CreatedAt time.Time `json:"created_at"` // When the search was executed
}
