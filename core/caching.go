package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streakhq/streak/internal/contract"
	"github.com/streakhq/streak/schema"
)

// currentCacheVersion defines the version of the cached payload schema
const currentCacheVersion = 1

// cacheStaleness bounds the age of a usable cache entry
const cacheStaleness = 7 * 24 * time.Hour

// cachedCommitLog fetches one repository's commit log through the cache
func cachedCommitLog(ctx context.Context, client contract.GitClient, mgr contract.CacheManager, repoPath string, since time.Time) ([]schema.CommitEvent, error) {
	if mgr == nil {
		return client.CommitLog(ctx, repoPath, since)
	}
	store := mgr.GetLogStore()
	if store == nil {
		// Fallback to direct invocation
		return client.CommitLog(ctx, repoPath, since)
	}

	// Include the repo HEAD so the entry self-invalidates when commits land.
	// An unreadable HEAD still yields a usable, if weaker, key.
	repoHash, err := client.RepoHash(ctx, repoPath)
	if err != nil {
		repoHash = ""
	}

	key := commitLogCacheKey(repoPath, repoHash, since)

	// Check for cache hit
	if events, ok := checkCacheHit(store, key); ok {
		return events, nil
	}

	// Cache miss: fetch and store
	return fetchAndStore(ctx, client, store, key, repoPath, repoHash, since)
}

// checkCacheHit attempts to retrieve and validate a cached commit log.
// The boolean distinguishes a cached empty log from a miss.
func checkCacheHit(store contract.CacheStore, key string) ([]schema.CommitEvent, bool) {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil, false // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheStaleness {
			var cached schema.CachedLog
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Events, true // Cache hit
			}
		}
	}

	return nil, false // Cache miss (stale or version mismatch)
}

// fetchAndStore invokes git and persists the unfiltered result
func fetchAndStore(ctx context.Context, client contract.GitClient, store contract.CacheStore, key, repoPath, repoHash string, since time.Time) ([]schema.CommitEvent, error) {
	events, err := client.CommitLog(ctx, repoPath, since)
	if err != nil {
		return nil, err
	}

	// Store in cache; a write failure never fails the aggregation
	cached := schema.CachedLog{RepoPath: repoPath, HeadHash: repoHash, Events: events}
	if data, err := json.Marshal(cached); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return events, nil
}

// commitLogCacheKey creates a unique key for one repository's lookback window
func commitLogCacheKey(repoPath, repoHash string, since time.Time) string {
	key := fmt.Sprintf("%s:%s:%s:%d",
		repoPath,
		repoHash,
		since.Format(time.DateOnly),
		currentCacheVersion,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
