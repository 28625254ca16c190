package auth

import (
	"context"
	"testing"

	"github.com/dukerupert/techarena/internal/model"
)

func TestWithAuthRoundTrip(t *testing.T) {
	u := model.User{ID: "tech-1", Role: model.RoleTechnician, Active: true}
	ctx := WithAuth(context.Background(), AuthContext{User: u, SessionID: 7})

	ac, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected AuthContext in context")
	}
	if ac.SessionID != 7 {
		t.Errorf("SessionID = %d, want 7", ac.SessionID)
	}
	if got := UserID(ctx); got != "tech-1" {
		t.Errorf("UserID = %q, want %q", got, "tech-1")
	}
	if IsAdmin(ctx) {
		t.Error("technician reported as admin")
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := FromContext(ctx); ok {
		t.Error("expected no AuthContext")
	}
	if UserID(ctx) != "" {
		t.Error("expected empty UserID")
	}
	if IsAdmin(ctx) {
		t.Error("expected IsAdmin false without auth")
	}
}

func TestIsAdmin(t *testing.T) {
	ctx := WithAuth(context.Background(), AuthContext{User: model.User{ID: "a", Role: model.RoleAdmin}})
	if !IsAdmin(ctx) {
		t.Error("expected admin")
	}
}
