package models

const (
	BookmarkOperationAdd    = "add"
	BookmarkOperationRemove = "remove"
)

// BookmarkEvent describes a bookmark change published to the event stream.
type BookmarkEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the change.
	UserID    int64  `json:"user_id"`   // UserID is the owner of the bookmark.
	RecipeID  int64  `json:"recipe_id"` // RecipeID is the bookmarked recipe.
	Operation string `json:"operation"` // Operation is either "add" or "remove".
}
