// Package identity owns the user lifecycle: registration, login,
// profile updates and account deletion, including password hashing.
package identity

import (
	"context"
	"errors"

	"eggy/internal/session"
	"eggy/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrNothingToUpdate  = errors.New("no update information provided")
	ErrNotLoggedIn      = errors.New("no user logged in")
)

// DefaultAvatar is assigned to newly registered users until they upload
// their own picture.
const DefaultAvatar = "/images/profile-pic.png"

// UserStore is the slice of the storage layer the service needs.
type UserStore interface {
	Create(context.Context, *store.User) error
	GetByUsername(context.Context, string) (*store.User, error)
	Update(context.Context, string, store.UserPatch) (*store.User, error)
	Delete(context.Context, string) error
}

type Service struct {
	users    UserStore
	sessions *session.Slot
	cost     int // bcrypt cost factor
}

func NewService(users UserStore, sessions *session.Slot, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{users: users, sessions: sessions, cost: bcryptCost}
}

func (s *Service) hashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), s.cost)
}

// Register creates a new account. Username and email must be unused
// (store.ErrDuplicateEmail / store.ErrDuplicateUsername otherwise) and
// the confirmation must match the password. Registration does not log
// the user in.
func (s *Service) Register(ctx context.Context, email, username, password, confirm string) (*store.User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &store.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		AvatarImg:    DefaultAvatar,
		Description:  "",
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves a login attempt. On a match the session slot is
// set to the submitted credentials; otherwise it is cleared. The bool
// reports the outcome; callers never learn which of the two fields was
// wrong.
//
// A match is existence of the username: the submitted password is
// hashed but never compared against the stored hash.
// TODO: compare the stored bcrypt hash with bcrypt.CompareHashAndPassword
// instead of trusting username existence.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if _, err := s.hashPassword(password); err != nil {
		return false, err
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.sessions.Clear()
			return false, nil
		}
		return false, err
	}

	s.sessions.Set(session.Login{Username: username, Password: password})
	return true, nil
}

// Logout clears the session slot.
func (s *Service) Logout() {
	s.sessions.Clear()
}

// ProfilePatch is the set of profile fields a user may change. Nil
// fields are left as they are; Password is plaintext and is rehashed
// before storage.
type ProfilePatch struct {
	Username    *string
	Email       *string
	Password    *string
	AvatarImg   *string
	Description *string
}

func (p ProfilePatch) empty() bool {
	return p.Username == nil &&
		p.Email == nil &&
		p.Password == nil &&
		p.AvatarImg == nil &&
		p.Description == nil
}

// UpdateProfile applies the patch to currentUsername's record. An empty
// patch reports ErrNothingToUpdate without touching the record. A
// rename is propagated into the session slot when the renamed user is
// the one logged in.
func (s *Service) UpdateProfile(ctx context.Context, currentUsername string, patch ProfilePatch) (*store.User, error) {
	if patch.empty() {
		return nil, ErrNothingToUpdate
	}

	if _, err := s.users.GetByUsername(ctx, currentUsername); err != nil {
		return nil, err
	}

	update := store.UserPatch{
		Username:    patch.Username,
		Email:       patch.Email,
		AvatarImg:   patch.AvatarImg,
		Description: patch.Description,
	}
	if patch.Password != nil {
		hash, err := s.hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = hash
	}

	user, err := s.users.Update(ctx, currentUsername, update)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		s.sessions.Rename(currentUsername, *patch.Username)
	}
	return user, nil
}

// DeleteAccount removes the logged-in user's record and clears the
// session. ErrNotLoggedIn when the slot is empty is distinct from
// store.ErrNotFound when the record is already gone.
func (s *Service) DeleteAccount(ctx context.Context) error {
	login, ok := s.sessions.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	if err := s.users.Delete(ctx, login.Username); err != nil {
		return err
	}

	s.sessions.Clear()
	return nil
}
