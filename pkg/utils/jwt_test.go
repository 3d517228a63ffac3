package utils_test

import (
	"testing"
	"time"

	"learnhive/pkg/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.CreateToken("bob@example.com", "teacher")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Email != "bob@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != "teacher" {
		t.Fatalf("expected role claim, got %q", claims.Role)
	}

	expiry := claims.ExpiresAt.Time
	want := time.Now().Add(24 * time.Hour)
	if diff := expiry.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expected ~1 day expiry, got %v", expiry)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	if _, err := utils.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestValidateToken_RejectsTampering(t *testing.T) {
	token, err := utils.CreateToken("eve@example.com", "student")
	if err != nil {
		t.Fatal(err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := utils.ValidateToken(tampered); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}
