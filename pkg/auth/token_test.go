package auth

import (
	"testing"
	"time"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)
	user := &model.User{ID: 7, Email: "alice@example.com", Role: model.RoleAnalyst}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "alice@example.com" || claims.Role != model.RoleAnalyst {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != "7" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "7")
	}
}

func TestTokenWrongKey(t *testing.T) {
	issuer := NewTokenManager([]byte("key-one"), time.Hour)
	verifier := NewTokenManager([]byte("key-two"), time.Hour)

	token, err := issuer.Generate(&model.User{ID: 1, Email: "a@example.com", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := verifier.Validate(token); err == nil {
		t.Fatal("expected validation to fail with the wrong key")
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := m.Generate(&model.User{ID: 1, Email: "a@example.com", Role: model.RoleExecutor})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := m.Validate(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	if _, err := m.Validate("not.a.token"); err == nil {
		t.Fatal("expected validation to fail for malformed input")
	}
}
