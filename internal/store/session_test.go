package store

import (
	"testing"
	"time"

	"github.com/dukerupert/techarena/internal/model"
)

func setupSessionTestDB(t *testing.T) (*SessionStore, *UserStore) {
	t.Helper()
	db := setupTestDB(t)
	return NewSessionStore(db), NewUserStore(db)
}

func TestSessionCreate(t *testing.T) {
	ss, us := setupSessionTestDB(t)

	u, err := us.Create("jan@example.com", "Jan", model.RoleTechnician, "", "h")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	sess, err := ss.Create(u.ID, time.Hour)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(sess.Token) != 64 { // 32 bytes hex-encoded
		t.Errorf("token length = %d, want 64", len(sess.Token))
	}
	if sess.UserID != u.ID {
		t.Errorf("user_id = %s, want %s", sess.UserID, u.ID)
	}
}

func TestSessionGetByToken(t *testing.T) {
	ss, us := setupSessionTestDB(t)

	u, _ := us.Create("jan@example.com", "Jan", model.RoleTechnician, "", "h")
	created, _ := ss.Create(u.ID, time.Hour)

	sess, err := ss.GetByToken(created.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.ID != created.ID {
		t.Errorf("id = %d, want %d", sess.ID, created.ID)
	}

	missing, err := ss.GetByToken("nonexistent")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown token")
	}
}

func TestSessionExpired(t *testing.T) {
	ss, us := setupSessionTestDB(t)

	u, _ := us.Create("jan@example.com", "Jan", model.RoleTechnician, "", "h")
	expired, _ := ss.Create(u.ID, -time.Minute)
	live, _ := ss.Create(u.ID, time.Hour)

	sess, err := ss.GetByToken(expired.Token)
	if err != nil {
		t.Fatalf("get expired: %v", err)
	}
	if sess != nil {
		t.Error("expected nil for expired session")
	}

	n, err := ss.DeleteExpired()
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
	if got, _ := ss.GetByToken(live.Token); got == nil {
		t.Error("live session should survive cleanup")
	}
}

func TestSessionDeleteByUserID(t *testing.T) {
	ss, us := setupSessionTestDB(t)

	u, _ := us.Create("jan@example.com", "Jan", model.RoleTechnician, "", "h")
	a, _ := ss.Create(u.ID, time.Hour)
	b, _ := ss.Create(u.ID, time.Hour)

	if err := ss.DeleteByUserID(u.ID); err != nil {
		t.Fatalf("delete by user: %v", err)
	}
	for _, tok := range []string{a.Token, b.Token} {
		if got, _ := ss.GetByToken(tok); got != nil {
			t.Errorf("session %s should be deleted", tok[:8])
		}
	}
}
