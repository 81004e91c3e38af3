package models

// Label is a single label returned by image label detection.
type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// ImageSearchResult is the outcome of a photo search.
type ImageSearchResult struct {
	ImagePath string  `json:"img_path"`
	Labels    []Label `json:"result"`
}
