package identity

import (
	"context"
	"sync"
)

// Session tracks the signed-in identity for one logical client and notifies
// observers on every transition. It is the single standing subscription in
// the system; callers must Close it at shutdown.
type Session struct {
	svc Service

	mu        sync.Mutex
	current   *Identity
	observers map[int]func(*Identity)
	nextID    int
	closed    bool
}

// Subscription is a cancellable handle returned by Observe.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Cancel unregisters the observer. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

func NewSession(svc Service) *Session {
	return &Session{
		svc:       svc,
		observers: make(map[int]func(*Identity)),
	}
}

// SignIn authenticates against the identity service and, on success, makes
// the returned identity current and notifies observers.
func (s *Session) SignIn(ctx context.Context, email, password string) (Identity, error) {
	id, err := s.svc.Authenticate(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}
	s.set(&id)
	return id, nil
}

// Establish makes an identity already issued by the authority the current
// one, as happens right after account creation.
func (s *Session) Establish(id Identity) {
	s.set(&id)
}

// SignOut clears the current identity and notifies observers.
func (s *Session) SignOut() error {
	s.set(nil)
	return nil
}

// Current returns the signed-in identity, or nil.
func (s *Session) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Observe registers fn and fires it immediately with the current state, then
// again on every subsequent transition. The returned Subscription must be
// cancelled by the observer when it no longer wants events.
func (s *Session) Observe(fn func(*Identity)) *Subscription {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	if !s.closed {
		s.observers[id] = fn
	}
	current := s.current
	s.mu.Unlock()

	// Initial-state event fires outside the lock so observers may call back
	// into the session.
	fn(current)

	return &Subscription{cancel: func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}}
}

// Close drops all observers. Subsequent Observe calls fire the initial event
// but register nothing.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.observers = make(map[int]func(*Identity))
	s.mu.Unlock()
}

func (s *Session) set(id *Identity) {
	s.mu.Lock()
	s.current = id
	fns := make([]func(*Identity), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}
