package dashboard

import (
	"strings"

	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/model"
	ws "github.com/dukerupert/techarena/internal/websocket"
)

type UserInput struct {
	Email    string     `json:"email" validate:"required,email,max=254"`
	Name     string     `json:"name" validate:"required,max=100"`
	Role     model.Role `json:"role" validate:"required,oneof=ADMIN TECHNICIAN"`
	Phone    string     `json:"phone" validate:"max=32"`
	Password string     `json:"password" validate:"omitempty,min=8,max=72"`
}

func (in *UserInput) trim() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Role == "" {
		in.Role = model.RoleTechnician
	}
}

func (s *Service) ListUsers() ([]model.User, error) {
	return s.users.List()
}

// Technicians returns the active technicians in creation order.
func (s *Service) Technicians() ([]model.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	return compliance.Technicians(users), nil
}

// CreateUser adds an active user. Without a password the configured
// default is used.
func (s *Service) CreateUser(in UserInput) (*model.User, error) {
	in.trim()
	if err := s.checkStruct(&in); err != nil {
		return nil, err
	}
	existing, err := s.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	password := in.Password
	if password == "" {
		password = s.opts.DefaultPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(in.Email, in.Name, in.Role, in.Phone, hash)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	s.broadcast(ws.NewMessage("user", "saved", u.ID, nil))
	return u, nil
}

// UpdateUser changes identity fields and, when given, the password.
func (s *Service) UpdateUser(id string, in UserInput) (*model.User, error) {
	in.trim()
	if err := s.checkStruct(&in); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if !strings.EqualFold(u.Email, in.Email) {
		other, err := s.users.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailTaken
		}
	}

	u.Email = in.Email
	u.Name = in.Name
	u.Role = in.Role
	u.Phone = in.Phone
	u.PasswordHash = ""
	if in.Password != "" {
		if u.PasswordHash, err = hashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	saved, err := s.users.Save(*u)
	if err != nil {
		return nil, err
	}
	s.broadcast(ws.NewMessage("user", "saved", saved.ID, nil))
	return saved, nil
}

// DeactivateUser soft-deletes a user and ends their sessions. Their tasks
// stay in place.
func (s *Service) DeactivateUser(actor model.User, id string) error {
	if actor.ID == id {
		return ErrForbidden
	}
	u, err := s.users.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if err := s.users.SetActive(id, false); err != nil {
		return err
	}
	if err := s.sessions.DeleteByUserID(id); err != nil {
		return err
	}
	s.logger.Info("user deactivated", "user_id", id)
	s.broadcast(ws.NewMessage("user", "deactivated", id, nil))
	return nil
}

// FindUser looks a user up by id or email.
func (s *Service) FindUser(ref string) (*model.User, error) {
	var (
		u   *model.User
		err error
	)
	if strings.Contains(ref, "@") {
		u, err = s.users.GetByEmail(ref)
	} else {
		u, err = s.users.GetByID(ref)
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
