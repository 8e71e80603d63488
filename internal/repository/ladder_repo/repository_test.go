package ladder_repo

import (
	"cases_backend/internal/model"
	"context"
	"errors"
	"testing"
)

func TestSingleSessionPerPlayer(t *testing.T) {
	r := NewLadderRepository()
	ctx := context.Background()

	if err := r.Create(ctx, 1, model.LadderSession{Stake: 100}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	err := r.Create(ctx, 1, model.LadderSession{Stake: 200})
	if !errors.Is(err, model.ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}

	// У другого игрока своя сессия
	if err := r.Create(ctx, 2, model.LadderSession{Stake: 100}); err != nil {
		t.Fatalf("second player blocked: %v", err)
	}
}

func TestLifecycle(t *testing.T) {
	r := NewLadderRepository()
	ctx := context.Background()

	if _, err := r.Get(ctx, 1); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	r.Create(ctx, 1, model.LadderSession{Stake: 100})

	session, err := r.Get(ctx, 1)
	if err != nil || session.Stake != 100 || session.Step != 0 {
		t.Fatalf("unexpected session %+v, err %v", session, err)
	}

	session.Step = 3
	if err := r.Update(ctx, 1, session); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	session, _ = r.Get(ctx, 1)
	if session.Step != 3 {
		t.Fatalf("step not persisted: %d", session.Step)
	}

	if err := r.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// Повторное закрытие — ошибка: двойное разрешение сессии невозможно
	if err := r.Delete(ctx, 1); !errors.Is(err, model.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
