package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Hasini-Stu/tasknew/identity"
	"github.com/Hasini-Stu/tasknew/models"
	"github.com/Hasini-Stu/tasknew/repositories"
	"github.com/Hasini-Stu/tasknew/session"
)

type staticService struct{ id identity.Identity }

func (s staticService) CreateAccount(ctx context.Context, email, password string) (identity.Identity, error) {
	return s.id, nil
}

func (s staticService) Authenticate(ctx context.Context, email, password string) (identity.Identity, error) {
	return s.id, nil
}

type fakeBackend struct {
	sess       *identity.Session
	profiles   map[string]*models.UserProfile
	profileErr error
	logoutErr  error
}

func newFakeBackend() *fakeBackend {
	id := identity.Identity{UID: "uid-1", Email: "ada@example.com"}
	return &fakeBackend{
		sess: identity.NewSession(staticService{id: id}),
		profiles: map[string]*models.UserProfile{
			"uid-1": {UID: "uid-1", FirstName: "Ada", Email: "ada@example.com", IsActive: true},
		},
	}
}

func (b *fakeBackend) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	if b.profileErr != nil {
		return nil, b.profileErr
	}
	p, ok := b.profiles[uid]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (b *fakeBackend) Logout() error {
	if b.logoutErr != nil {
		return b.logoutErr
	}
	return b.sess.SignOut()
}

func (b *fakeBackend) ObserveSession(fn func(*identity.Identity)) *identity.Subscription {
	return b.sess.Observe(fn)
}

func TestNewProcessesInitialSignedOutState(t *testing.T) {
	backend := newFakeBackend()
	c := session.New(backend)
	defer c.Close()

	state := c.State()
	if state.Loading {
		t.Fatal("loading must clear after the initial observation event")
	}
	if state.User != nil || state.Profile != nil {
		t.Fatal("signed-out session must carry no user or profile")
	}
	if c.IsAuthenticated() {
		t.Fatal("signed-out session must not report authenticated")
	}
}

func TestSignInTransitionAttachesProfile(t *testing.T) {
	backend := newFakeBackend()
	c := session.New(backend)
	defer c.Close()

	if _, err := backend.sess.SignIn(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	state := c.State()
	if state.User == nil || state.User.UID != "uid-1" {
		t.Fatalf("expected signed-in user, got %+v", state.User)
	}
	if state.Profile == nil || state.Profile.FirstName != "Ada" {
		t.Fatalf("expected attached profile, got %+v", state.Profile)
	}
	if !c.IsAuthenticated() {
		t.Fatal("signed-in session must report authenticated")
	}
}

func TestProfileFetchFailureKeepsUserAuthenticated(t *testing.T) {
	backend := newFakeBackend()
	backend.profileErr = errors.New("profile store down")
	c := session.New(backend)
	defer c.Close()

	if _, err := backend.sess.SignIn(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	state := c.State()
	if state.User == nil {
		t.Fatal("user must stay authenticated when the profile fetch fails")
	}
	if state.Profile != nil {
		t.Fatal("failed profile fetch must leave no profile attached")
	}
}

func TestLogoutClearsStateEvenOnRemoteFailure(t *testing.T) {
	backend := newFakeBackend()
	c := session.New(backend)
	defer c.Close()

	if _, err := backend.sess.SignIn(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	backend.logoutErr = errors.New("remote unavailable")
	if err := c.Logout(); err == nil {
		t.Fatal("expected the remote failure to be reported")
	}

	state := c.State()
	if state.User != nil || state.Profile != nil {
		t.Fatal("local state must clear even when remote logout fails")
	}
	if state.Loading {
		t.Fatal("logout must not re-enter the loading state")
	}
}

func TestCloseStopsObservingTransitions(t *testing.T) {
	backend := newFakeBackend()
	c := session.New(backend)
	c.Close()

	if _, err := backend.sess.SignIn(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	if c.State().User != nil {
		t.Fatal("closed context must not observe further transitions")
	}
}
