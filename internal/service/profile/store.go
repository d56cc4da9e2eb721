package profile

import (
	"context"
	"errors"
	"strconv"
	"sync"

	applog "github.com/janisto/profile-maps/internal/platform/logging"
)

const auditResource = "profile"

// MemoryStore keeps profiles in insertion order in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles []Profile
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns a copy of every profile in insertion order.
func (s *MemoryStore) List(_ context.Context) []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Profile, len(s.profiles))
	for i, p := range s.profiles {
		out[i] = p.clone()
	}
	return out
}

// Get returns a copy of the profile with the given id.
func (s *MemoryStore) Get(_ context.Context, id int) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Profile{}, &NotFoundError{ID: id}
	}
	return s.profiles[i].clone(), nil
}

// Add appends a profile with id max(existing)+1, or 1 when the store is empty.
func (s *MemoryStore) Add(ctx context.Context, fields Fields) Profile {
	s.mu.Lock()
	p := Profile{ID: s.nextID()}
	p.apply(fields)
	s.profiles = append(s.profiles, p)
	s.mu.Unlock()

	applog.LogAuditEvent(ctx, "create", auditResource, strconv.Itoa(p.ID), applog.AuditSuccess, nil)
	return p.clone()
}

// Update replaces every field of the profile except its id.
func (s *MemoryStore) Update(ctx context.Context, id int, fields Fields) (Profile, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		err := &NotFoundError{ID: id}
		auditFailure(ctx, "update", id, err)
		return Profile{}, err
	}
	s.profiles[i].apply(fields)
	p := s.profiles[i].clone()
	s.mu.Unlock()

	applog.LogAuditEvent(ctx, "update", auditResource, strconv.Itoa(id), applog.AuditSuccess, nil)
	return p, nil
}

// Remove deletes the profile. A missing id yields a *NotFoundError on every call.
func (s *MemoryStore) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		err := &NotFoundError{ID: id}
		auditFailure(ctx, "delete", id, err)
		return err
	}
	s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
	s.mu.Unlock()

	applog.LogAuditEvent(ctx, "delete", auditResource, strconv.Itoa(id), applog.AuditSuccess, nil)
	return nil
}

// Len reports how many profiles are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// indexOf must be called with the lock held.
func (s *MemoryStore) indexOf(id int) int {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with the write lock held.
func (s *MemoryStore) nextID() int {
	maxID := 0
	for _, p := range s.profiles {
		maxID = max(maxID, p.ID)
	}
	return maxID + 1
}

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	if errors.Is(err, ErrNotFound) {
		return "not_found"
	}
	return "internal_error"
}

func auditFailure(ctx context.Context, action string, id int, err error) {
	applog.LogAuditEvent(ctx, action, auditResource, strconv.Itoa(id), applog.AuditFailure,
		map[string]any{"error": categorizeError(err)})
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
