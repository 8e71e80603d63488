package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

// GenerateRefreshToken Выдает непрозрачный refresh токен.
// В хранилище попадает только его хэш, сам токен уходит клиенту в cookie.
func GenerateRefreshToken() (string, error) {
	b := make([]byte, 32) // 256 бит
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func HashRefreshToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}

// VerifyRefreshToken Сверяет токен с сохраненным хэшем за постоянное время
func VerifyRefreshToken(token string, storedHash string) bool {
	digest := sha256.Sum256([]byte(token))
	stored, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(digest[:], stored) == 1
}
