package util

import (
	"testing"
	"time"

	"sofreh_salawat_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "user@example.com"}
	user.ID = "user-1"

	secret := "test-secret-test-secret-test-secret"
	token, err := GenerateJWT(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("userId = %q, want user-1", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "user@example.com"}
	user.ID = "user-1"

	token, err := GenerateJWT(user, "secret-one-secret-one-secret-one", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret-two-secret-two-secret-two"); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "user@example.com"}
	user.ID = "user-1"

	token, err := GenerateJWT(user, "test-secret-test-secret-test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "test-secret-test-secret-test-secret"); err == nil {
		t.Fatal("expired token accepted")
	}
}
