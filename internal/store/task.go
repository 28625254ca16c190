package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/techarena/internal/model"
)

type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

func scanTask(scanner interface{ Scan(...any) error }) (*model.Task, error) {
	var t model.Task
	var taskType, outcome, status string
	var install, other, photos string
	err := scanner.Scan(
		&t.ID, &t.TechnicianID, &t.TechnicianName, &t.Date, &taskType, &t.CustomerNumber,
		&outcome, &status, &install, &other, &photos, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Type = model.TaskType(taskType)
	t.Outcome = model.Outcome(outcome)
	t.Status = model.TaskStatus(status)
	if err := json.Unmarshal([]byte(install), &t.InstallProducts); err != nil {
		return nil, fmt.Errorf("decode install products: %w", err)
	}
	if err := json.Unmarshal([]byte(other), &t.OtherProducts); err != nil {
		return nil, fmt.Errorf("decode other products: %w", err)
	}
	if err := json.Unmarshal([]byte(photos), &t.Photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return &t, nil
}

const taskCols = `id, technician_id, technician_name, task_date, type, customer_number,
	outcome, status, install_products, other_products, photos, notes, created_at, updated_at`

func encodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Save upserts t by id and returns the stored row. technician_id and
// task_date are never changed by an update. A zero id gets a fresh uuid.
func (s *TaskStore) Save(t model.Task) (*model.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	install, err := encodeList(t.InstallProducts)
	if err != nil {
		return nil, fmt.Errorf("encode install products: %w", err)
	}
	other, err := encodeList(t.OtherProducts)
	if err != nil {
		return nil, fmt.Errorf("encode other products: %w", err)
	}
	photos, err := encodeList(t.Photos)
	if err != nil {
		return nil, fmt.Errorf("encode photos: %w", err)
	}

	now := time.Now().UTC()
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	_, err = s.db.Exec(
		`INSERT INTO tasks (`+taskCols+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   type = excluded.type,
		   customer_number = excluded.customer_number,
		   outcome = excluded.outcome,
		   status = excluded.status,
		   install_products = excluded.install_products,
		   other_products = excluded.other_products,
		   photos = excluded.photos,
		   notes = excluded.notes,
		   updated_at = excluded.updated_at`,
		t.ID, t.TechnicianID, t.TechnicianName, t.Date, string(t.Type), t.CustomerNumber,
		string(t.Outcome), string(t.Status), install, other, photos, t.Notes, now, t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return s.GetByID(t.ID)
}

func (s *TaskStore) GetByID(id string) (*model.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskCols+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List returns every task, oldest date first.
func (s *TaskStore) List() ([]model.Task, error) {
	return s.query(`SELECT ` + taskCols + ` FROM tasks ORDER BY task_date ASC, created_at ASC`)
}

// ListBetween returns tasks dated from..to inclusive.
func (s *TaskStore) ListBetween(from, to model.Date) ([]model.Task, error) {
	return s.query(
		`SELECT `+taskCols+` FROM tasks WHERE task_date BETWEEN ? AND ? ORDER BY task_date ASC, created_at ASC`,
		from, to,
	)
}

func (s *TaskStore) query(q string, args ...any) ([]model.Task, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (s *TaskStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
