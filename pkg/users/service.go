// User management and mock-credential auth. There is no password store:
// sign-in accepts the fixed demo credentials only, matching the fixture
// nature of the rest of the system. Sessions are uuid tokens held in memory.
package users

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/appdb"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserInactive       = fmt.Errorf("user is deactivated")
	ErrSessionNotFound    = fmt.Errorf("session not found")
)

// Demo sign-in credentials
var mockCredentials = map[string]string{
	"admin@system.com":  "Admin1234@",
	"sadmin@system.com": "Admin1234@",
}

type Service struct {
	NewToken func() string
	Now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]string // token -> userId
}

func NewService() *Service {
	return &Service{
		NewToken: uuid.NewString,
		Now:      time.Now,
		sessions: make(map[string]string),
	}
}

// SeedFromFixtures inserts fixture users that are not in the database yet.
// Existing rows win, so edits made through the API survive restarts.
func (s *Service) SeedFromFixtures(fixtureUsers []types.User) error {
	for _, u := range fixtureUsers {
		existing, err := appdb.GetUserByEmail(u.Email)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if existing != nil {
			continue
		}
		row := appdb.FromUser(u)
		if err := appdb.InsertUser(&row); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}

// Login validates the demo credentials, stamps the last login and issues a
// session token.
func (s *Service) Login(email, password string) (types.User, string, error) {
	expected, ok := mockCredentials[strings.ToLower(email)]
	if !ok || expected != password {
		return types.User{}, "", ErrInvalidCredentials
	}

	row, err := appdb.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		return types.User{}, "", err
	}
	if row == nil {
		return types.User{}, "", ErrUserNotFound
	}
	if !row.IsActive {
		return types.User{}, "", ErrUserInactive
	}

	row.LastLoginAt = s.Now().UTC().Format(time.RFC3339)
	if err := appdb.UpdateUser(row); err != nil {
		return types.User{}, "", err
	}

	token := s.NewToken()
	s.mu.Lock()
	s.sessions[token] = row.UserId
	s.mu.Unlock()

	return row.ToUser(), token, nil
}

func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// BySession resolves a session token back to its user.
func (s *Service) BySession(token string) (types.User, error) {
	s.mu.RLock()
	userId, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return types.User{}, ErrSessionNotFound
	}

	row, err := appdb.GetUserById(userId)
	if err != nil {
		return types.User{}, err
	}
	if row == nil {
		return types.User{}, ErrUserNotFound
	}
	return row.ToUser(), nil
}

func (s *Service) List() ([]types.User, error) {
	rows, err := appdb.ListUsers()
	if err != nil {
		return nil, err
	}
	list := make([]types.User, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.ToUser())
	}
	return list, nil
}

// Create assigns an id and creation time, then persists the user. New
// accounts must reset their password on first sign-in.
func (s *Service) Create(u types.User) (types.User, error) {
	u.UserId = "u-" + uuid.NewString()[:8]
	u.CreatedAt = s.Now().UTC().Format(time.RFC3339)
	u.MustResetPassword = true

	row := appdb.FromUser(u)
	if err := appdb.InsertUser(&row); err != nil {
		return types.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) Update(u types.User) error {
	existing, err := appdb.GetUserById(u.UserId)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, u.UserId)
	}
	row := appdb.FromUser(u)
	row.CreatedAt = existing.CreatedAt
	return appdb.UpdateUser(&row)
}

func (s *Service) SetActive(userId string, active bool) error {
	row, err := appdb.GetUserById(userId)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userId)
	}
	row.IsActive = active
	return appdb.UpdateUser(row)
}

// RequirePasswordReset flags the account so the frontend forces the reset
// flow on next sign-in.
func (s *Service) RequirePasswordReset(userId string) error {
	row, err := appdb.GetUserById(userId)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userId)
	}
	row.MustResetPassword = true
	return appdb.UpdateUser(row)
}
