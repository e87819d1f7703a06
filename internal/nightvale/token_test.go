package nightvale

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestTokenExpiresAtReadsExpiryWithoutVerification(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"sub": "wallet", "exp": exp.Unix()})

	got, err := TokenExpiresAt("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(exp) {
		t.Fatalf("expected expiry %v, got %v", exp, got)
	}
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	past := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	if !TokenExpired(past, now) {
		t.Fatal("expected past token to be expired")
	}

	future := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	if TokenExpired(future, now) {
		t.Fatal("expected future token to be valid")
	}

	// Opaque tokens are left for the upstream API to judge
	if TokenExpired("not-a-jwt", now) {
		t.Fatal("unparsable token must not be reported expired")
	}
}
