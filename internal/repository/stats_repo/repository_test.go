package stats_repo

import (
	"cases_backend/internal/model"
	"testing"
)

func TestRecordWager(t *testing.T) {
	r := NewStatsRepository()

	r.RecordWager(1, "cases", 100, 0)
	r.RecordWager(1, "cases", 100, 0)
	r.RecordWager(1, "roulette", 50, 100)

	stats := r.PlayerStats(1)
	if stats.TotalStaked != 250 || stats.TotalPaidOut != 100 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.WagersByGame["cases"] != 2 || stats.WagersByGame["roulette"] != 1 {
		t.Fatalf("unexpected per-game counts: %+v", stats.WagersByGame)
	}
}

func TestBestDropOnlyImproves(t *testing.T) {
	r := NewStatsRepository()

	r.RecordDrop(1, "alice", model.Item{ID: 3, Name: "AWP Asiimov", Value: 400})
	r.RecordDrop(1, "alice", model.Item{ID: 1, Name: "AK-47 Redline", Value: 50})

	stats := r.PlayerStats(1)
	if stats.BestDrop == nil || stats.BestDrop.Value != 400 {
		t.Fatalf("cheaper drop must not replace the best one: %+v", stats.BestDrop)
	}

	r.RecordDrop(1, "alice", model.Item{ID: 4, Name: "Butterfly Knife", Value: 800})
	stats = r.PlayerStats(1)
	if stats.BestDrop.Value != 800 {
		t.Fatalf("better drop must replace the best one: %+v", stats.BestDrop)
	}
}

func TestLeaderboard(t *testing.T) {
	r := NewStatsRepository()

	r.RecordDrop(1, "alice", model.Item{ID: 1, Value: 50})
	r.RecordDrop(2, "bob", model.Item{ID: 4, Value: 800})
	r.RecordDrop(3, "carol", model.Item{ID: 3, Value: 400})
	// Игрок без дропов в таблицу не попадает
	r.RecordWager(4, "cases", 100, 0)

	board := r.Leaderboard(10)
	if len(board) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(board))
	}
	if board[0].Name != "bob" || board[1].Name != "carol" || board[2].Name != "alice" {
		t.Fatalf("leaderboard out of order: %+v", board)
	}

	board = r.Leaderboard(2)
	if len(board) != 2 || board[0].Name != "bob" {
		t.Fatalf("limit not applied: %+v", board)
	}
}

func TestPlayerStatsEmpty(t *testing.T) {
	r := NewStatsRepository()

	stats := r.PlayerStats(42)
	if stats.TotalStaked != 0 || stats.BestDrop != nil || stats.WagersByGame == nil {
		t.Fatalf("unexpected empty stats: %+v", stats)
	}
}
