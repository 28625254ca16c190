package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/techarena/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var role string
	var active int
	err := scanner.Scan(&u.ID, &u.Email, &u.Name, &role, &active, &u.Phone, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	u.Active = active != 0
	return &u, nil
}

const userCols = `id, email, name, role, active, phone, password_hash, created_at, updated_at`

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Create inserts an active user with a fresh id.
func (s *UserStore) Create(email, name string, role model.Role, phone, passwordHash string) (*model.User, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, name, role, active, phone, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 1, ?, ?, ?, ?)`,
		id, strings.TrimSpace(email), name, string(role), phone, passwordHash, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return s.GetByID(id)
}

// Save upserts u by id. An empty password hash keeps the stored one.
func (s *UserStore) Save(u model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO users (id, email, name, role, active, phone, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   email = excluded.email,
		   name = excluded.name,
		   role = excluded.role,
		   active = excluded.active,
		   phone = excluded.phone,
		   password_hash = CASE WHEN excluded.password_hash = '' THEN users.password_hash ELSE excluded.password_hash END,
		   updated_at = excluded.updated_at`,
		u.ID, strings.TrimSpace(u.Email), u.Name, string(u.Role), boolInt(u.Active), u.Phone, u.PasswordHash, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return s.GetByID(u.ID)
}

func (s *UserStore) GetByID(id string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail matches case-insensitively.
func (s *UserStore) GetByEmail(email string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE email = ? COLLATE NOCASE`, strings.TrimSpace(email))
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// List returns every user, inactive included, in creation order.
func (s *UserStore) List() ([]model.User, error) {
	rows, err := s.db.Query(`SELECT ` + userCols + ` FROM users ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *UserStore) SetActive(id string, active bool) error {
	_, err := s.db.Exec(
		`UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		boolInt(active), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

type seedUser struct {
	email string
	name  string
	role  model.Role
}

var defaultUsers = []seedUser{
	{"admin@telenet.be", "Hoofdbeheerder", model.RoleAdmin},
	{"tech1@telenet.be", "Jan Technieker", model.RoleTechnician},
	{"tech2@telenet.be", "Piet Installateur", model.RoleTechnician},
}

// SeedDefaults inserts the bootstrap admin and technicians when the users
// table is empty. It reports how many users were created.
func (s *UserStore) SeedDefaults(passwordHash string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	for i, u := range defaultUsers {
		// Stagger creation times so List keeps the seed order.
		created := now.Add(time.Duration(i) * time.Millisecond)
		if _, err := tx.Exec(
			`INSERT INTO users (id, email, name, role, active, phone, password_hash, created_at, updated_at)
			 VALUES (?, ?, ?, ?, 1, '', ?, ?, ?)`,
			uuid.NewString(), u.email, u.name, string(u.role), passwordHash, created, created,
		); err != nil {
			return 0, fmt.Errorf("seed user %q: %w", u.email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(defaultUsers), nil
}
