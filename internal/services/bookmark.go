package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
	"github.com/segmentio/kafka-go"
)

// BookmarkWriter defines methods for writing bookmarks.
type BookmarkWriter interface {
	Save(ctx context.Context, userID, recipeID int64) error               // Inserts a bookmark row unconditionally
	SaveUnique(ctx context.Context, userID, recipeID int64) (bool, error) // Inserts a bookmark row unless one exists
	Delete(ctx context.Context, userID, recipeID int64) (int64, error)    // Deletes all rows of the pair
}

// BookmarkReader defines methods for reading bookmarks.
type BookmarkReader interface {
	GetRecipeIDsByUserID(ctx context.Context, userID int64) ([]int64, error)          // Returns bookmarked ids in insertion order
	GetRecipesByUserID(ctx context.Context, userID int64) ([]models.RecipeDB, error) // Returns one recipe per bookmark row
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BookmarkService manages user bookmarks and publishes bookmark events.
type BookmarkService struct {
	writeRepo       BookmarkWriter
	readRepo        BookmarkReader
	kafkaWriter     KafkaWriter
	allowDuplicates bool
}

// NewBookmarkService creates a new BookmarkService. With allowDuplicates set,
// bookmarking the same recipe twice stores two rows.
func NewBookmarkService(
	writeRepo BookmarkWriter,
	readRepo BookmarkReader,
	kafkaWriter KafkaWriter,
	allowDuplicates bool,
) *BookmarkService {
	return &BookmarkService{
		writeRepo:       writeRepo,
		readRepo:        readRepo,
		kafkaWriter:     kafkaWriter,
		allowDuplicates: allowDuplicates,
	}
}

// publishEvent publishes a bookmark event to Kafka.
func (s *BookmarkService) publishEvent(ctx context.Context, event models.BookmarkEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bookmark event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bookmark event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Bookmark event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

func newBookmarkEvent(userID, recipeID int64, operation string) models.BookmarkEvent {
	return models.BookmarkEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		RecipeID:  recipeID,
		Operation: operation,
	}
}

// Add bookmarks a recipe for the user.
func (s *BookmarkService) Add(ctx context.Context, userID, recipeID int64) error {
	if s.allowDuplicates {
		if err := s.writeRepo.Save(ctx, userID, recipeID); err != nil {
			logger.Log.Errorw("failed to save bookmark", "userID", userID, "recipeID", recipeID, "error", err)
			return err
		}
	} else {
		inserted, err := s.writeRepo.SaveUnique(ctx, userID, recipeID)
		if err != nil {
			logger.Log.Errorw("failed to save bookmark", "userID", userID, "recipeID", recipeID, "error", err)
			return err
		}
		if !inserted {
			return nil
		}
	}

	s.publishEvent(ctx, newBookmarkEvent(userID, recipeID, models.BookmarkOperationAdd))
	return nil
}

// Remove deletes every bookmark of the user for the recipe.
func (s *BookmarkService) Remove(ctx context.Context, userID, recipeID int64) error {
	deleted, err := s.writeRepo.Delete(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to delete bookmark", "userID", userID, "recipeID", recipeID, "error", err)
		return err
	}
	if deleted == 0 {
		return nil
	}

	s.publishEvent(ctx, newBookmarkEvent(userID, recipeID, models.BookmarkOperationRemove))
	return nil
}

// List returns the ids of the bookmarked recipes, each once, in first-seen order.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.readRepo.GetRecipeIDsByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarks", "userID", userID, "error", err)
		return nil, err
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique, nil
}

// ListFull returns the bookmarked recipes, one entry per bookmark row.
func (s *BookmarkService) ListFull(ctx context.Context, userID int64) ([]models.Recipe, error) {
	rows, err := s.readRepo.GetRecipesByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookmarked recipes", "userID", userID, "error", err)
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(rows))
	for _, r := range rows {
		recipes = append(recipes, ToRecipe(r))
	}
	return recipes, nil
}
