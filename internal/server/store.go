package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

type storedWorkbook struct {
	workbook  *models.Workbook
	createdAt time.Time
	expiresAt time.Time
}

// Store keeps parsed workbooks in memory, keyed by upload ID.
// Entries expire after the TTL; when full, the oldest entry is evicted.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]storedWorkbook
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// NewStore creates a store holding at most max workbooks for ttl each.
func NewStore(ttl time.Duration, max int) *Store {
	if max < 1 {
		max = 1
	}
	return &Store{
		entries: make(map[uuid.UUID]storedWorkbook),
		ttl:     ttl,
		max:     max,
		now:     time.Now,
	}
}

// Put stores wb and returns its ID.
func (s *Store) Put(wb *models.Workbook) uuid.UUID {
	id := uuid.New()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	for len(s.entries) >= s.max {
		s.evictOldestLocked()
	}
	s.entries[id] = storedWorkbook{workbook: wb, createdAt: now, expiresAt: now.Add(s.ttl)}
	return id
}

// Get returns the workbook stored under id, if present and not expired.
func (s *Store) Get(id uuid.UUID) (*models.Workbook, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.workbook, true
}

// Delete removes the workbook stored under id and reports whether it existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	return ok
}

// Len returns the number of stored workbooks, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep drops expired entries and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *Store) evictOldestLocked() {
	var oldest uuid.UUID
	var oldestAt time.Time
	first := true
	for id, e := range s.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldest, oldestAt, first = id, e.createdAt, false
		}
	}
	delete(s.entries, oldest)
}
