package services

import (
	"errors"
	"testing"

	"solvenow/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	token, user, err := svc.Register(&RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("user ID not assigned")
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if uint(claims["user_id"].(float64)) != user.ID {
		t.Errorf("token user_id = %v, want %d", claims["user_id"], user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	req := &RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "password1"}
	if _, _, err := svc.Register(req); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Register(req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("duplicate registration created a row, have %d users", count)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	_, _, err := svc.Register(&RegisterRequest{Username: "x", Email: "not-an-email", Password: "password1"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, _, err := svc.Register(&RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "correct1"}); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Login(&LoginRequest{Email: "carol@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	// Unknown email must be indistinguishable from a wrong password.
	_, _, err := svc.Login(&LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, _, err := svc.Register(&RegisterRequest{Username: "dave", Email: "dave@example.com", Password: "correct1"}); err != nil {
		t.Fatal(err)
	}

	token, user, err := svc.Login(&LoginRequest{Email: "dave@example.com", Password: "correct1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || user.Username != "dave" {
		t.Errorf("unexpected login result: token=%q user=%+v", token, user)
	}
}
