package dashboard

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/techarena/internal/model"
)

// Authenticate checks an email/password pair. Unknown, inactive and
// wrong-password cases all return ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) (*model.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Active {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and opens a session for the user.
func (s *Service) Login(email, password string) (*model.Session, *model.User, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.sessions.Create(u.ID, s.opts.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("login", "user_id", u.ID, "role", u.Role)
	return sess, u, nil
}

// SessionUser resolves a session token to its active user. It returns nil
// without error when the token is unknown, expired, or the user was deactivated.
func (s *Service) SessionUser(token string) (*model.User, *model.Session, error) {
	sess, err := s.sessions.GetByToken(token)
	if err != nil || sess == nil {
		return nil, nil, err
	}
	u, err := s.users.GetByID(sess.UserID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil || !u.Active {
		return nil, nil, nil
	}
	return u, sess, nil
}

func (s *Service) Logout(sessionID int64) error {
	return s.sessions.Delete(sessionID)
}

// CleanupSessions removes expired sessions and reports how many went.
func (s *Service) CleanupSessions() (int64, error) {
	return s.sessions.DeleteExpired()
}

// Seed creates the bootstrap users on an empty database.
func (s *Service) Seed() (int, error) {
	hash, err := hashPassword(s.opts.DefaultPassword)
	if err != nil {
		return 0, err
	}
	n, err := s.users.SeedDefaults(hash)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("seeded default users", "count", n)
	}
	return n, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
