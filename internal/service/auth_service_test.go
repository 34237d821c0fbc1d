package service

import (
	"errors"
	"testing"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/util"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Name:     "Fatemeh",
		Email:    "fatemeh@example.com",
		Password: "secret123",
	}
	token, err := env.auth.Register(user)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}
	if user.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	// Stats row is created together with the account.
	if _, err := env.user.GetStats(user.ID); err != nil {
		t.Fatalf("user stats after register: %v", err)
	}

	loggedIn, token, err := env.auth.Login("fatemeh@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %s, want %s", loggedIn.ID, user.ID)
	}

	claims, err := util.ParseJWT(token, env.auth.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Errorf("claims = %s/%s, want %s/%s", claims.UserID, claims.Email, user.ID, user.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "taken@example.com")

	_, err := env.auth.Register(&model.User{
		Name:     "Other",
		Email:    "taken@example.com",
		Password: "different",
	})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "user@example.com")

	// Unknown email and wrong password fail identically.
	if _, _, err := env.auth.Login("nobody@example.com", "secret123"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := env.auth.Login("user@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")

	if err := env.user.DisableUser(user.ID); err != nil {
		t.Fatalf("disable: %v", err)
	}

	if _, _, err := env.auth.Login("user@example.com", "secret123"); !errors.Is(err, util.ErrUserDisabled) {
		t.Fatalf("err = %v, want ErrUserDisabled", err)
	}
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")

	updated, err := env.auth.UpdateProfile(user.ID, "", "09123456789", "")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Phone != "09123456789" {
		t.Errorf("phone = %q, want 09123456789", updated.Phone)
	}
	if updated.Name != "Test User" {
		t.Errorf("name overwritten: %q", updated.Name)
	}
}
