package profile

import (
	"context"
	"sync"
	"time"
)

// Stopper cancels a scheduled callback. *time.Timer satisfies it.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Stopper

// SelectionState is a snapshot of the selection.
type SelectionState struct {
	// Selected is false in the Unselected state.
	Selected bool
	ID       int
	// Loading is true while a deferred selection is pending.
	Loading bool
}

// Selection tracks the single profile shown on the map. The selected id is not
// checked against the store: a stale id stays until Clear or a new selection.
type Selection struct {
	mu        sync.Mutex
	state     SelectionState
	pending   Stopper
	gen       uint64
	afterFunc AfterFunc
}

// SelectionOption configures a Selection.
type SelectionOption func(*Selection)

// WithAfterFunc replaces the timer used by SelectAfter.
func WithAfterFunc(fn AfterFunc) SelectionOption {
	return func(s *Selection) {
		s.afterFunc = fn
	}
}

// NewSelection returns a controller in the Unselected state.
func NewSelection(opts ...SelectionOption) *Selection {
	s := &Selection{
		afterFunc: func(d time.Duration, f func()) Stopper {
			return time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select makes id the active selection immediately, superseding any pending one.
func (s *Selection) Select(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPending()
	s.state = SelectionState{Selected: true, ID: id}
}

// SelectAfter selects id once delay has elapsed and reports loading until then. The
// previous selection stays visible meanwhile. A later Select, SelectAfter or Clear
// supersedes the pending one. A non-positive delay selects immediately.
func (s *Selection) SelectAfter(id int, delay time.Duration) {
	if delay <= 0 {
		s.Select(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPending()
	s.state.Loading = true
	gen := s.gen
	s.pending = s.afterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.pending = nil
		s.state = SelectionState{Selected: true, ID: id}
	})
}

// Clear returns to the Unselected state.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPending()
	s.state = SelectionState{}
}

// State returns the current snapshot.
func (s *Selection) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the selected profile, or false when nothing is selected or the
// selected id no longer exists.
func (s *Selection) Current(ctx context.Context, store Store) (Profile, bool) {
	state := s.State()
	if !state.Selected {
		return Profile{}, false
	}
	p, err := store.Get(ctx, state.ID)
	if err != nil {
		return Profile{}, false
	}
	return p, true
}

// cancelPending must be called with the lock held. Bumping the generation makes a
// callback that already fired a no-op.
func (s *Selection) cancelPending() {
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.state.Loading = false
}
