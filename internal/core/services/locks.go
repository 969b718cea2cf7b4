package services

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 64

// sessionLocks serialises read-modify-write cycles on the same session
// within one process. Sessions hash onto a fixed set of mutexes, so unrelated
// sessions occasionally share one.
type sessionLocks struct {
	stripes [lockStripes]sync.Mutex
}

// lock acquires the mutex for id and returns its unlock function.
func (l *sessionLocks) lock(id string) func() {
	m := &l.stripes[xxhash.Sum64String(id)%lockStripes]
	m.Lock()
	return m.Unlock
}
