package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Hasini-Stu/tasknew/internal/logger"
	"github.com/Hasini-Stu/tasknew/identity"
	"github.com/Hasini-Stu/tasknew/models"
	"github.com/Hasini-Stu/tasknew/repositories"
)

// ProfileStore is the slice of the users collection the adapter needs.
// Absent records are reported as repositories.ErrNotFound.
type ProfileStore interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	FindByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	FindByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	UpdateLastLogin(ctx context.Context, uid string, at time.Time) error
}

// Adapter wraps registration, login, logout, session observation and profile
// lookup over the identity service and the application-owned users collection.
type Adapter struct {
	svc      identity.Service
	session  *identity.Session
	profiles ProfileStore
}

func NewAdapter(svc identity.Service, session *identity.Session, profiles ProfileStore) *Adapter {
	return &Adapter{svc: svc, session: session, profiles: profiles}
}

// RegisterInput is the sign-up form payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register provisions an identity-service account plus the application-owned
// profile record. The profile carries a redundant SHA-256 digest of the
// password alongside the identity service's own credential.
//
// A failure after account creation leaves an orphaned identity account with
// no profile. That gap is deliberate: it is reported, logged and left for
// operator repair rather than silently rolled back.
func (a *Adapter) Register(ctx context.Context, in RegisterInput) (identity.Identity, error) {
	// Duplicate pre-check against the application-owned profiles, so the
	// caller gets DuplicateAccount before the identity service is touched.
	if _, err := a.profiles.FindByEmail(ctx, in.Email); err == nil {
		return identity.Identity{}, newError(KindDuplicateAccount, msgDuplicateAccount, nil)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return identity.Identity{}, newError(KindNetworkError, msgNetwork, err)
	}

	digest := Digest(in.Password)

	id, err := a.svc.CreateAccount(ctx, in.Email, in.Password)
	if err != nil {
		return identity.Identity{}, mapIdentityError(err, "Registration failed. Please try again.")
	}

	profile := &models.UserProfile{
		UID:            id.UID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          id.Email,
		HashedPassword: digest,
		CreatedAt:      time.Now(),
		LastLoginAt:    nil,
		IsActive:       true,
	}
	if err := a.profiles.Create(ctx, profile); err != nil {
		logger.ErrorWithFields("profile creation failed after account creation; identity account orphaned", logger.Fields{
			"uid":   id.UID,
			"error": err.Error(),
		})
		return identity.Identity{}, newError(KindNetworkError, msgNetwork, err)
	}

	a.session.Establish(id)
	return id, nil
}

// Login runs the login protocol: profile lookup by email, redundant digest
// comparison, then authentication against the identity service, which remains
// the canonical authority. lastLoginAt is updated best-effort.
func (a *Adapter) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	profile, err := a.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Never reveal whether the email is registered.
			return identity.Identity{}, newError(KindInvalidCredentials, msgInvalidCreds, err)
		}
		return identity.Identity{}, newError(KindNetworkError, msgNetwork, err)
	}

	// Redundant, non-canonical check: the identity service below still owns
	// real authentication.
	if Digest(password) != profile.HashedPassword {
		return identity.Identity{}, newError(KindInvalidCredentials, msgInvalidCreds, nil)
	}

	id, err := a.session.SignIn(ctx, email, password)
	if err != nil {
		return identity.Identity{}, mapIdentityError(err, "Login failed. Please try again.")
	}

	if err := a.profiles.UpdateLastLogin(ctx, id.UID, time.Now()); err != nil {
		logger.WarnWithFields("failed to update last login time", logger.Fields{
			"uid":   id.UID,
			"error": err.Error(),
		})
	}

	return id, nil
}

// Logout signs the session out.
func (a *Adapter) Logout() error {
	return a.session.SignOut()
}

// GetProfile fetches the application-owned profile for uid.
func (a *Adapter) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	return a.profiles.FindByUID(ctx, uid)
}

// ObserveSession registers a continuous session observer. It fires with the
// initial state and on every transition; cancel the returned subscription
// when done.
func (a *Adapter) ObserveSession(fn func(*identity.Identity)) *identity.Subscription {
	return a.session.Observe(fn)
}
