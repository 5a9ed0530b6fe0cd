package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// DraftRepository keeps normalized draft batches in Redis between the
// generate call and the operator's commit. Batches expire on their own; a
// batch the operator never commits simply ages out.
type DraftRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDraftRepository creates a new DraftRepository.
func NewDraftRepository(rdb *redis.Client, ttl time.Duration) *DraftRepository {
	return &DraftRepository{rdb: rdb, ttl: ttl}
}

// Save stores a draft batch under its id with the configured TTL.
func (r *DraftRepository) Save(ctx context.Context, batch *model.DraftBatch) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	key := config.CacheKey.DraftBatchKey(batch.ID)
	if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("store batch: %w", err)
	}
	return nil
}

// Get loads a draft batch, or nil when it never existed or has expired.
func (r *DraftRepository) Get(ctx context.Context, batchID string) (*model.DraftBatch, error) {
	key := config.CacheKey.DraftBatchKey(batchID)
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}

	var batch model.DraftBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return &batch, nil
}

// Delete drops a committed batch so its indexes cannot be replayed.
func (r *DraftRepository) Delete(ctx context.Context, batchID string) error {
	return r.rdb.Del(ctx, config.CacheKey.DraftBatchKey(batchID)).Err()
}
