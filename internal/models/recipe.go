package models

// RecipeDB represents a recipe row as stored in the catalog.
// Material keeps the serialized ingredient list, e.g. "['egg', 'milk']".
type RecipeDB struct {
	ID       int64  `json:"id" db:"id"`                          // Primary key
	Title    string `json:"recipe_title" db:"recipe_title"`      // Recipe title, not unique in the catalog
	URL      string `json:"recipe_url" db:"recipe_url"`          // Link to the original recipe page
	ImageURL string `json:"food_image_url" db:"food_image_url"`  // Link to the dish photo
	Material string `json:"recipe_material" db:"recipe_material"` // Serialized ingredient list
}

// Recipe is a catalog entry with its ingredient list already parsed.
type Recipe struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	ImageURL string   `json:"image_url"`
	Material []string `json:"material"`
}
