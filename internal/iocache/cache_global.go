package iocache

import (
	"fmt"
	"sync"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
)

// blameTable is the name of the table for blame caching.
const blameTable = "blame_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// CacheStoreManager hands out the blame cache store. Workers from many
// goroutines fetch the store through it, so access is mutex-guarded.
type CacheStoreManager struct {
	sync.Mutex
	blame contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetBlameStore implements the CacheManager interface.
func (m *CacheStoreManager) GetBlameStore() contract.CacheStore {
	m.Lock()
	defer m.Unlock()
	return m.blame
}

// InitStore initializes the global cache manager. Safe to call more than
// once; only the first call does work.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewCacheStore(blameTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize blame caching: %w", err)
			return
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.blame = store
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.blame != nil {
			if err := Manager.blame.Close(); err != nil {
				contract.LogWarn("failed to close blame cache", err)
			}
			Manager.blame = nil
		}
	})
}
