package auth

import (
	"strings"

	"github.com/ortelius/vulnmgt-backend/model"
)

// CredentialStore verifies a username/password pair and returns the matching
// user. Implementations return ErrInvalidCredentials for both unknown users
// and wrong passwords so callers cannot probe for valid usernames.
type CredentialStore interface {
	Verify(username, password string) (*model.User, error)
}

// InMemoryCredentialStore holds a fixed set of users, hashed at construction.
// Swapping in a database-backed implementation requires no change to the
// login handler.
type InMemoryCredentialStore struct {
	users []model.User
}

// NewInMemoryCredentialStore hashes the given plaintext passwords and builds
// the store. Hashing failures are programming errors at startup, so it panics.
func NewInMemoryCredentialStore(seed map[string]SeedUser) *InMemoryCredentialStore {
	s := &InMemoryCredentialStore{}
	for username, u := range seed {
		hash, err := HashPassword(u.Password)
		if err != nil {
			panic("failed to hash seed password: " + err.Error())
		}
		s.users = append(s.users, model.User{
			ID:           u.ID,
			Username:     username,
			PasswordHash: hash,
			Role:         u.Role,
		})
	}
	return s
}

// SeedUser describes one demo account
type SeedUser struct {
	ID       string
	Password string
	Role     string
}

// DefaultSeedUsers returns the demo accounts shipped with the app
func DefaultSeedUsers() map[string]SeedUser {
	return map[string]SeedUser{
		"admin": {ID: "1", Password: "admin123", Role: model.RoleAdmin},
		"user":  {ID: "2", Password: "user123", Role: model.RoleUser},
	}
}

// Verify checks the pair against the seeded users. Username comparison is
// case-insensitive.
func (s *InMemoryCredentialStore) Verify(username, password string) (*model.User, error) {
	for i := range s.users {
		if !strings.EqualFold(s.users[i].Username, username) {
			continue
		}
		if !CheckPasswordHash(password, s.users[i].PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		u := s.users[i]
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}
