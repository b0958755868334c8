// Package session owns the authenticated-session lifecycle: hydration
// from the persisted credential, sign-in, sign-out, and the optimistic
// local profile merge. It is the single writer of session state; the
// view layer only reads.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/credstore"
)

// Fallback messages shown when a failure carries no backend message.
const (
	genericSignInFailure = "Đăng nhập thất bại. Vui lòng thử lại."
)

// HydrateOutcome distinguishes why hydration ended where it did. All
// outcomes except HydrateRestored leave the store signed out; the
// variant exists for diagnostics, not for branching user-visible
// behavior.
type HydrateOutcome int

const (
	// HydrateSkipped means hydration already ran in this process.
	HydrateSkipped HydrateOutcome = iota
	// HydrateNoCredential means no credential was stored; no network call
	// was made.
	HydrateNoCredential
	// HydrateRejected means a credential was stored but the backend would
	// not vouch for it; the credential was erased.
	HydrateRejected
	// HydrateRestored means the stored credential resolved to a user.
	HydrateRestored
)

func (o HydrateOutcome) String() string {
	switch o {
	case HydrateSkipped:
		return "skipped"
	case HydrateNoCredential:
		return "no-credential"
	case HydrateRejected:
		return "rejected"
	case HydrateRestored:
		return "restored"
	default:
		return fmt.Sprintf("HydrateOutcome(%d)", int(o))
	}
}

// Store is the process-wide session state container.
type Store struct {
	api    *client.Client
	creds  credstore.Store
	keeper *TokenKeeper
	log    *slog.Logger

	mu        sync.Mutex
	user      *client.User
	hydrating bool
	hydrated  bool
	lastErr   string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the structured logger for session events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.log = logger }
}

// NewStore creates a session store. keeper must be the same TokenKeeper
// the client was built with, so that arming and clearing the token here
// is visible to outgoing requests.
func NewStore(api *client.Client, creds credstore.Store, keeper *TokenKeeper, opts ...StoreOption) *Store {
	s := &Store{api: api, creds: creds, keeper: keeper}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return s
}

// IsAuthenticated reports whether a user is signed in. It is true
// exactly when CurrentUser returns one.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// IsHydrating reports whether a hydration attempt is in flight.
func (s *Store) IsHydrating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrating
}

// CurrentUser returns a copy of the signed-in user.
func (s *Store) CurrentUser() (client.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return client.User{}, false
	}
	return *s.user, true
}

// LastError returns the user-visible message from the most recent
// failed sign-in, or "" after a success.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Hydrate reconstructs session state from the persisted credential. It
// runs at most once per process; later calls return HydrateSkipped.
//
// Failures are silent by design: a rejected or unreadable credential is
// erased and the store stays signed out. The returned outcome is the
// diagnostic record of which path was taken.
func (s *Store) Hydrate(ctx context.Context) (HydrateOutcome, error) {
	s.mu.Lock()
	if s.hydrated || s.hydrating {
		s.mu.Unlock()
		return HydrateSkipped, nil
	}
	s.hydrating = true
	s.mu.Unlock()

	outcome, err := s.hydrate(ctx)

	s.mu.Lock()
	s.hydrating = false
	s.hydrated = true
	s.mu.Unlock()

	s.log.Debug("session hydration finished", "outcome", outcome.String())
	return outcome, err
}

func (s *Store) hydrate(ctx context.Context) (HydrateOutcome, error) {
	cred, ok, err := s.creds.Load()
	if err != nil {
		return HydrateNoCredential, fmt.Errorf("loading persisted credential: %w", err)
	}
	if !ok {
		return HydrateNoCredential, nil
	}

	s.keeper.Set(cred.Token)
	user, err := s.api.GetUser(ctx, cred.UserID)
	if err != nil {
		// Non-success envelope and transport failure alike: the credential
		// could not be vouched for, so it must not survive. Storage is
		// cleared before the keeper so a fallback load cannot resurrect it.
		if clearErr := s.creds.Clear(); clearErr != nil {
			s.log.Warn("clearing rejected credential failed", "error", clearErr)
		}
		s.keeper.Clear()
		s.log.Debug("persisted credential rejected", "user_id", cred.UserID, "error", err)
		return HydrateRejected, nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return HydrateRestored, nil
}

// SignIn exchanges credentials for a session. On success the token and
// user ID are persisted and the user becomes current. On a domain
// failure the returned error carries the backend message and neither
// the persisted credential nor the current user changes.
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	auth, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		msg := client.UserMessage(err, genericSignInFailure)
		s.mu.Lock()
		s.lastErr = msg
		s.mu.Unlock()
		return err
	}

	cred := credstore.Credential{Token: auth.AccessToken, UserID: auth.User.ID}
	if err := s.creds.Save(cred); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	s.keeper.Set(auth.AccessToken)

	user := auth.User
	s.mu.Lock()
	s.user = &user
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SignOut erases the persisted credential and clears session state. No
// backend call is made; invalidation is purely client-side. Safe to
// call in any state.
func (s *Store) SignOut() {
	if err := s.creds.Clear(); err != nil {
		s.log.Warn("clearing credential on sign-out failed", "error", err)
	}
	s.keeper.Clear()

	s.mu.Lock()
	s.user = nil
	s.lastErr = ""
	s.mu.Unlock()
}

// UserPatch is a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Birthday *string
	Avatar   *string
	Gender   *bool
	Role     *string
}

// ApplyUserUpdate merges a partial update into the current user without
// re-fetching. Callers must only invoke it after the backend accepted
// the corresponding write; the store does not verify that. A no-op when
// signed out.
func (s *Store) ApplyUserUpdate(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.user.Phone = *patch.Phone
	}
	if patch.Birthday != nil {
		s.user.Birthday = *patch.Birthday
	}
	if patch.Avatar != nil {
		s.user.Avatar = *patch.Avatar
	}
	if patch.Gender != nil {
		s.user.Gender = *patch.Gender
	}
	if patch.Role != nil {
		s.user.Role = *patch.Role
	}
}
