package token

import (
	"cases_backend/internal/model"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 7, Login: "alice"}

	tokenStr, err := GenerateAccessToken(user, secret, 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.ID != "7" {
		t.Fatalf("expected claims ID 7, got %q", claims.ID)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("wrong")); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("secret")); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	hash := HashRefreshToken(tokenStr)
	if !VerifyRefreshToken(tokenStr, hash) {
		t.Fatal("refresh token does not verify against its own hash")
	}
	if VerifyRefreshToken("forged", hash) {
		t.Fatal("forged refresh token verified")
	}
}
