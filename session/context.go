// Package session holds the process-wide reactive session state: the current
// identity and its derived profile. It is fed by the credential adapter's
// session observation channel and torn down explicitly at shutdown.
package session

import (
	"context"
	"sync"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/identity"
	"github.com/Hasini-Stu/tasknew/models"
)

// Backend is the slice of the credential adapter the context needs.
type Backend interface {
	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	Logout() error
	ObserveSession(fn func(*identity.Identity)) *identity.Subscription
}

// State is a snapshot of the session cell. Loading stays true until the first
// session-transition event has been processed; protected views must not
// render before then.
type State struct {
	User    *identity.Identity
	Profile *models.UserProfile
	Loading bool
}

// Context is the single reactive cell. One logical owner mutates it (the
// observation callback); readers take snapshots.
type Context struct {
	backend Backend

	mu    sync.Mutex
	state State
	sub   *identity.Subscription
}

// New subscribes to session transitions and returns the context. The initial
// observation event fires synchronously, so Loading may already be false when
// New returns.
func New(backend Backend) *Context {
	c := &Context{
		backend: backend,
		state:   State{Loading: true},
	}
	c.sub = backend.ObserveSession(c.onTransition)
	return c
}

func (c *Context) onTransition(id *identity.Identity) {
	var profile *models.UserProfile
	if id != nil {
		p, err := c.backend.GetProfile(context.Background(), id.UID)
		if err != nil {
			// A missing profile does not fail the session; the user stays
			// authenticated with no profile attached.
			logger.WarnWithFields("failed to fetch user profile", logger.Fields{
				"uid":   id.UID,
				"error": err.Error(),
			})
		} else {
			profile = p
		}
	}

	c.mu.Lock()
	c.state = State{User: id, Profile: profile, Loading: false}
	c.mu.Unlock()
}

// State returns a snapshot of the cell.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsAuthenticated reports whether a user is present.
func (c *Context) IsAuthenticated() bool {
	return c.State().User != nil
}

// Logout signs out remotely and clears local state unconditionally, even when
// the remote call fails.
func (c *Context) Logout() error {
	err := c.backend.Logout()
	c.mu.Lock()
	c.state = State{Loading: false}
	c.mu.Unlock()
	if err != nil {
		logger.WarnWithFields("remote logout failed; local session cleared anyway", logger.Fields{
			"error": err.Error(),
		})
	}
	return err
}

// Close cancels the session observation subscription.
func (c *Context) Close() {
	if c.sub != nil {
		c.sub.Cancel()
	}
}
