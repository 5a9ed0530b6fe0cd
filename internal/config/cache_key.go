package config

import "fmt"

// cacheKeyRegistry centralizes every Redis key format used by the app so key
// collisions are impossible to introduce by accident.
type cacheKeyRegistry struct{}

// CacheKey is the global key registry instance.
var CacheKey = cacheKeyRegistry{}

// DraftBatchKey is the key holding one normalized draft batch awaiting review.
func (cacheKeyRegistry) DraftBatchKey(batchID string) string {
	return fmt.Sprintf("quizforge:drafts:%s", batchID)
}
