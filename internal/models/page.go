package models

// ResultPage is one page of the session's ingredient search result.
type ResultPage struct {
	Recipes []RecipeDB // Recipes shown on this page
	Page    int        // Current 1-based page
	Pages   []int      // Interior page links
	Last    int        // Last page number, total/10
	Total   int        // Number of resolved results
}

// TitlePage is one page of a title search.
type TitlePage struct {
	Query        string   // Searched title fragment
	Page         int      // Current 1-based page
	PageList     []int    // Page links, always starting with 1
	RecipeAmount int      // Number of distinct matching titles
	PageAmount   int      // ceil(RecipeAmount/10)
	Recipes      []Recipe // Recipes shown on this page
}
