package util

import (
	"testing"
	"time"

	"nptel_prep_backend/internal/model"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "student@example.com", Role: model.Student}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "student@example.com" || claims.Role != model.Student {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseJWTRejectsBadSecret(t *testing.T) {
	user := &model.User{Email: "student@example.com", Role: model.Student}
	user.ID = 1

	token, err := GenerateJWT(user, "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}

func TestParseJWTRejectsExpired(t *testing.T) {
	user := &model.User{Email: "student@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expired token should be rejected")
	}
}
