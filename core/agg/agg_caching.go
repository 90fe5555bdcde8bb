package agg

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheMaxAge bounds how long a cached aggregation stays usable.
const cacheMaxAge = 7 * 24 * time.Hour

// CachedAggregateRepository wraps AggregateRepository with a cache lookup
// keyed on the repository state and the scan window.
func CachedAggregateRepository(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager, repoPath string) (schema.RepositoryRecord, error) {
	store := mgr.GetActivityStore()
	if store == nil {
		// Fallback to direct computation
		return AggregateRepository(ctx, client, repoPath, cfg.CutoffTime)
	}

	key := generateCacheKey(ctx, cfg, client, repoPath)

	// Check for cache hit
	if record := checkCacheHit(store, key); record != nil {
		return *record, nil
	}

	// Cache miss: compute and store
	return computeAndStore(ctx, cfg, client, store, key, repoPath)
}

// checkCacheHit attempts to retrieve and validate a cached record
func checkCacheHit(store contract.CacheStore, key string) *schema.RepositoryRecord {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= cacheMaxAge {
			var record schema.RepositoryRecord
			if err := json.Unmarshal(data, &record); err == nil {
				return &record // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore computes the record and stores it in cache
func computeAndStore(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.CacheStore, key, repoPath string) (schema.RepositoryRecord, error) {
	record, err := AggregateRepository(ctx, client, repoPath, cfg.CutoffTime)
	if err != nil {
		return schema.RepositoryRecord{}, err
	}

	// Store in cache
	if data, err := json.Marshal(record); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return record, nil
}

// generateCacheKey creates a unique key from the scan parameters. The cutoff
// enters at day granularity so a sliding window does not thrash the cache,
// and the repository HEAD hash invalidates entries once new commits land.
func generateCacheKey(ctx context.Context, cfg *contract.Config, client contract.GitClient, repoPath string) string {
	repoHash, err := client.GetRepoHash(ctx, repoPath)
	if err != nil {
		repoHash = ""
	}

	key := fmt.Sprintf("%s:%d:%s:%s",
		repoPath,
		cfg.LookbackDays,
		cfg.CutoffTime.Format(schema.DayFormat),
		repoHash,
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
