package store

import (
	"testing"
	"time"

	"github.com/dukerupert/techarena/internal/model"
)

func TestExtraShiftToggle(t *testing.T) {
	es := NewExtraShiftStore(setupTestDB(t))
	saturday := model.NewDate(2024, time.June, 1)

	on, err := es.Toggle("tech-1", saturday)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on {
		t.Error("first toggle should set the flag")
	}

	shifts, err := es.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !shifts.Has("tech-1", saturday) {
		t.Error("expected flag after toggle")
	}
	if shifts.Has("tech-2", saturday) {
		t.Error("flag must be per technician")
	}

	off, err := es.Toggle("tech-1", saturday)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off {
		t.Error("second toggle should clear the flag")
	}

	shifts, _ = es.List()
	if len(shifts) != 0 {
		t.Errorf("shifts = %d, want 0", len(shifts))
	}
}

func TestExtraShiftKeyWithUnderscoreID(t *testing.T) {
	es := NewExtraShiftStore(setupTestDB(t))
	saturday := model.NewDate(2024, time.June, 8)

	if _, err := es.Toggle("legacy_tech_7", saturday); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	shifts, err := es.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !shifts.Has("legacy_tech_7", saturday) {
		t.Error("expected flag for id containing underscores")
	}
}
