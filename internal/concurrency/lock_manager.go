package concurrency

import (
	"strconv"
	"sync"
)

// LockManager handles named locks. The services use it to serialize
// operations per character before the store-level row lock is taken.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// CharacterKey builds the lock key for a character's economy state.
func CharacterKey(characterID int) string {
	return "character:" + strconv.Itoa(characterID)
}
