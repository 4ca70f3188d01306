// Package iocache provides the durable stores behind commit-log caching
// and run-history tracking.
package iocache

import (
	"sync"

	"github.com/streakhq/streak/internal/contract"
)

// CacheStoreManager manages the commit-log and run-history store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	logs         contract.CacheStore
	runs         contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetLogStore returns the commit-log CacheStore.
func (mgr *CacheStoreManager) GetLogStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.logs
}

// GetRunStore returns the run-history HistoryStore.
func (mgr *CacheStoreManager) GetRunStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
