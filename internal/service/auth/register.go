package auth

import (
	"cases_backend/internal/model"
	"cases_backend/pkg/pass"
	"cases_backend/pkg/token"
	"context"
	"time"

	"github.com/google/uuid"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// 1. Создать пользователя
	user.ID, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// 2. Завести кошелек и зачислить стартовый баланс обычной записью
	// topup — так сумма журнала всегда сходится с балансом
	err = s.walletRepo.CreateWallet(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if s.walletCfg.StartBalance() > 0 {
		_, err = s.walletRepo.Credit(ctx, user.ID, s.walletCfg.StartBalance(), model.KindTopup, "starting balance")
		if err != nil {
			return nil, err
		}
	}

	// 3. Генерация sessionID
	sessionID := uuid.NewString()

	// 4. Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// 5. Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:               sessionID,
			UserID:           user.ID,
			RefreshTokenHash: token.HashRefreshToken(refreshToken),
			ExpiresAt:        time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// 6. Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
