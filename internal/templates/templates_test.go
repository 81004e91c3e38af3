package templates

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Pages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	recipe := models.Recipe{ID: 3, Title: "Omelette", URL: "https://example.com/3", ImageURL: "https://example.com/3.jpg", Material: []string{"egg", " milk"}}

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{"login.html", map[string]any{"Username": "alice", "ErrorMessage": "bad credentials"}, []string{`value="alice"`, "bad credentials"}},
		{"register.html", map[string]any{"ErrorMessage": ""}, []string{`name="confirmation"`}},
		{"index.html", nil, []string{`href="/food-recipe"`}},
		{"bookmarks.html", map[string]any{"Recipes": []models.Recipe{recipe}}, []string{`/3/bookmark-release`, "Omelette"}},
		{"food-recipe.html", map[string]any{"Slots": make([]struct{}, 5)}, []string{`name="foods"`}},
		{
			"recipe-search.html",
			map[string]any{
				"Result": &models.ResultPage{
					Recipes: []models.RecipeDB{{ID: 3, Title: "Omelette"}, {ID: 4, Title: "Pudding"}},
					Page:    2,
					Pages:   []int{2, 3},
					Last:    4,
					Total:   41,
				},
				"Bookmarked": map[int64]bool{3: true},
			},
			[]string{`/2/3/bookmark-release`, `/2/4/bookmark`, `href="/4/recipe-search"`, "41 recipes"},
		},
		{"recipe-food.html", map[string]any{}, []string{`name="cooking"`}},
		{
			"food-search.html",
			&models.TitlePage{Query: "curry", Page: 1, PageList: []int{1, 2, 3}, RecipeAmount: 23, PageAmount: 3, Recipes: []models.Recipe{recipe}},
			[]string{`/food-search?q=curry&p=3`, "<li> milk</li>"},
		},
		{"foodlist.html", &recipe, []string{"<h1>Omelette</h1>", "<li>egg</li>"}},
		{"image-upload.html", map[string]any{}, []string{`enctype="multipart/form-data"`}},
		{
			"image-search.html",
			&models.ImageSearchResult{ImagePath: "/static/imgs/a.jpg", Labels: []models.Label{{Description: "卵", Score: 0.875}}},
			[]string{`/static/imgs/a.jpg`, "87.5%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tt.name, tt.data))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "missing.html", nil)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderer_ExecutionErrorWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html": {Data: []byte(`before {{.Missing.Field}} after`)},
	}
	r, err := NewFromFS(fsys, "*.html")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "page.html", struct{ Missing *struct{ Field string } }{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewFromFS_InvalidPattern(t *testing.T) {
	_, err := NewFromFS(fstest.MapFS{}, "*.html")
	assert.Error(t, err)
}
