package core

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
)

// cachedBlameLineCounts wraps the blame call with the cache store. A
// (revision, path) pair always yields the same counts, so cache hits are a
// pure optimization: months with no commits resolve to the same snapshot and
// skip the subprocess entirely on the second encounter.
func cachedBlameLineCounts(ctx context.Context, client contract.GitClient, mgr contract.CacheManager, repoPath, rev, path string) (schema.AuthorCount, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetBlameStore()
	}

	key := blameCacheKey(rev, path)
	if store != nil {
		if counts := checkCacheHit(store, key); counts != nil {
			return counts, nil
		}
	}

	counts, err := client.BlameLineCounts(ctx, repoPath, rev, path)
	if err != nil {
		return nil, err
	}

	if store != nil {
		storeBlameEntry(store, key, counts)
	}
	return counts, nil
}

// blameCacheKey builds the store key for one (revision, path) pair.
func blameCacheKey(rev, path string) string {
	return fmt.Sprintf("blame:%s:%s", rev, path)
}

// checkCacheHit returns decoded counts on a usable hit, nil otherwise.
// Any store or decode problem degrades to a miss.
func checkCacheHit(store contract.CacheStore, key string) schema.AuthorCount {
	data, version, _, err := store.Get(key)
	if err != nil || version != schema.BlameCacheVersion {
		return nil
	}
	counts := make(schema.AuthorCount)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&counts); err != nil {
		return nil
	}
	return counts
}

// storeBlameEntry encodes and writes one cache entry. Failures are warned
// about and ignored; the cache never blocks attribution.
func storeBlameEntry(store contract.CacheStore, key string, counts schema.AuthorCount) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(counts); err != nil {
		return
	}
	if err := store.Set(key, buf.Bytes(), schema.BlameCacheVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("failed to write blame cache entry", err)
	}
}
