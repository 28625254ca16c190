package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/techarena/internal/model"
)

type ExtraShiftStore struct {
	db *sql.DB
}

func NewExtraShiftStore(db *sql.DB) *ExtraShiftStore {
	return &ExtraShiftStore{db: db}
}

// List loads every flagged (technician, date) pair.
func (s *ExtraShiftStore) List() (model.ExtraShifts, error) {
	rows, err := s.db.Query(`SELECT shift_key FROM extra_shifts`)
	if err != nil {
		return nil, fmt.Errorf("list extra shifts: %w", err)
	}
	defer rows.Close()

	shifts := model.ExtraShifts{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan extra shift: %w", err)
		}
		key, err := model.ParseExtraShiftKey(raw)
		if err != nil {
			return nil, err
		}
		shifts[key] = true
	}
	return shifts, rows.Err()
}

// Toggle flips the flag for technicianID on date and returns the new value.
func (s *ExtraShiftStore) Toggle(technicianID string, date model.Date) (bool, error) {
	key := model.ExtraShiftKey{TechnicianID: technicianID, Date: date}.String()

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM extra_shifts WHERE shift_key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("delete extra shift: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	if removed == 0 {
		if _, err := tx.Exec(
			`INSERT INTO extra_shifts (shift_key, technician_id, shift_date) VALUES (?, ?, ?)`,
			key, technicianID, date,
		); err != nil {
			return false, fmt.Errorf("insert extra shift: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle: %w", err)
	}
	return removed == 0, nil
}
