package model

import "time"

// Session Сессия игрока. Refresh токен хранится только в виде sha256-хэша
type Session struct {
	ID               string
	UserID           int
	RefreshTokenHash string
	ExpiresAt        time.Time
}
