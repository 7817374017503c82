// Package memory is the in-process record store. Each entity lives in its own
// table guarded by a RWMutex, with ids drawn from a per-table counter that
// starts at 1 and never reuses a value.
package memory

import (
	"slices"
	"sync"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type table[T any] struct {
	mu    sync.RWMutex
	next  int64
	rows  map[int64]*T
	clone func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{next: 1, rows: make(map[int64]*T), clone: clone}
}

// insertLocked stores a copy of rec under the next id. setID writes the id
// into the stored record. Caller holds mu.
func (t *table[T]) insertLocked(rec *T, setID func(*T, int64)) *T {
	id := t.next
	t.next++
	stored := t.clone(rec)
	setID(stored, id)
	t.rows[id] = stored
	return t.clone(stored)
}

func (t *table[T]) insert(rec *T, setID func(*T, int64)) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(rec, setID)
}

func (t *table[T]) get(id int64) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return t.clone(rec), true
}

// firstLocked returns the stored record with the lowest id matching fn.
// Caller holds mu.
func (t *table[T]) firstLocked(match func(*T) bool) (*T, bool) {
	for _, id := range t.sortedIDsLocked() {
		if rec := t.rows[id]; match(rec) {
			return rec, true
		}
	}
	return nil, false
}

func (t *table[T]) list(match func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0)
	for _, id := range t.sortedIDsLocked() {
		if rec := t.rows[id]; match(rec) {
			out = append(out, t.clone(rec))
		}
	}
	return out
}

func (t *table[T]) update(id int64, fn func(*T)) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	fn(rec)
	return t.clone(rec), true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) sortedIDsLocked() []int64 {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Store holds every table of one planner instance.
type Store struct {
	Users         *UserRepository
	Calendar      *CalendarRepository
	Coworking     *CoworkingRepository
	Budget        *BudgetRepository
	Preferences   *PreferencesRepository
	Conversations *ConversationRepository
}

func New() *Store {
	return &Store{
		Users:         &UserRepository{t: newTable(cloneUser)},
		Calendar:      &CalendarRepository{t: newTable(cloneEvent)},
		Coworking:     &CoworkingRepository{t: newTable(cloneSpace)},
		Budget:        &BudgetRepository{t: newTable(cloneEntry)},
		Preferences:   &PreferencesRepository{t: newTable(clonePreferences)},
		Conversations: &ConversationRepository{t: newTable(cloneConversation)},
	}
}

// Repositories exposes the store through the core ports.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Users:         s.Users,
		Calendar:      s.Calendar,
		Coworking:     s.Coworking,
		Budget:        s.Budget,
		Preferences:   s.Preferences,
		Conversations: s.Conversations,
	}
}
