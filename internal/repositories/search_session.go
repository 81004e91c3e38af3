package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/recipe-search/internal/logger"
	"github.com/sbilibin2017/recipe-search/internal/models"
)

const searchSessionKeyPrefix = "search_session:"

// SearchSessionKey returns the Redis key holding the search of a login session.
func SearchSessionKey(sessionID string) string {
	return searchSessionKeyPrefix + sessionID
}

// SearchSessionRepository keeps the last search result of each login session in Redis.
type SearchSessionRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a stored search, normally the session lifetime
}

func NewSearchSessionRepository(client *redis.Client, expiration time.Duration) *SearchSessionRepository {
	return &SearchSessionRepository{
		client: client,
		exp:    expiration,
	}
}

// Save stores the search, replacing any previous one of the session.
func (r *SearchSessionRepository) Save(ctx context.Context, sessionID string, search *models.SearchSession) error {
	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to marshal search session: %w", err)
	}

	key := SearchSessionKey(sessionID)
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"recipe_ids", len(search.RecipeIDs),
		"error", err,
	)

	return err
}

// Get returns the stored search of the session, or nil when there is no active search.
func (r *SearchSessionRepository) Get(ctx context.Context, sessionID string) (*models.SearchSession, error) {
	key := SearchSessionKey(sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("redis get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var search models.SearchSession
	if err := json.Unmarshal(data, &search); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search session: %w", err)
	}

	logger.Log.Infow("redis get",
		"key", key,
		"recipe_ids", len(search.RecipeIDs),
		"error", nil,
	)

	return &search, nil
}

// Delete drops the stored search of the session.
func (r *SearchSessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := SearchSessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("redis del", "key", key, "error", err)

	return err
}
