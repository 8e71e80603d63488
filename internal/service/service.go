package service

import (
	"cases_backend/internal/model"
	"context"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type CaseService interface {
	Cases(ctx context.Context) []model.Case
	OpenCase(ctx context.Context, caseID int) (*model.CaseOpenResult, error)
	Drops(ctx context.Context) ([]model.Drop, error)
}

type LadderService interface {
	PlaceStake(ctx context.Context, amount int) (*model.LadderState, error)
	Climb(ctx context.Context) (*model.LadderState, error)
	CashOut(ctx context.Context) (*model.LadderState, error)
}

type RouletteService interface {
	Spin(ctx context.Context, amount int, color model.Color) (*model.RouletteResult, error)
}

type UpgradeService interface {
	Attempt(ctx context.Context, sourceEntryID string, targetItemID int) (*model.UpgradeResult, error)
}

type ContractService interface {
	Exchange(ctx context.Context, entryIDs []string) (*model.ContractResult, error)
}

type WheelService interface {
	Spin(ctx context.Context) (*model.WheelResult, error)
	Status(ctx context.Context) (*model.WheelStatus, error)
}

type WalletService interface {
	Deposit(ctx context.Context, amount int) (balance int, err error)
	RedeemPromo(ctx context.Context, code string) (balance int, err error)
	SellItem(ctx context.Context, entryID string) (*model.SaleResult, error)
	RequestWithdrawal(ctx context.Context, amount int) (balance int, err error)
	Balance(ctx context.Context) (int, error)
	History(ctx context.Context) ([]model.LedgerEntry, error)
}

type ProfileService interface {
	Inventory(ctx context.Context) ([]model.InventoryEntry, error)
	Stats(ctx context.Context) (*model.PlayerStats, error)
	Leaderboard(ctx context.Context) []model.LeaderboardEntry
}
