package stats_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	repoModel "cases_backend/internal/repository/stats_repo/model"
	"sort"
	"sync"
	"time"
)

// Реализация репозитория статистики ставок.
// Чисто производные данные: на экономику не влияют,
// поэтому живут отдельно от кошелька и инвентаря
type StatsRepo struct {
	mtx   sync.RWMutex
	state map[int]*repoModel.PlayerState
}

// NewStatsRepository Конструктор репозитория с пустым состоянием
func NewStatsRepository() repository.StatsRepository {
	return &StatsRepo{
		state: make(map[int]*repoModel.PlayerState),
	}
}

// RecordWager Учитывает одну ставку и ее выплату
func (r *StatsRepo) RecordWager(userID int, game string, stake, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := r.getOrCreate(userID)
	s.TotalStaked += stake
	s.TotalPaidOut += payout
	s.WagersByGame[game]++
}

// RecordDrop Обновляет лучший дроп игрока, если новый дороже
func (r *StatsRepo) RecordDrop(userID int, name string, item model.Item) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := r.getOrCreate(userID)
	if s.Name == "" {
		s.Name = name
	}
	if s.BestDrop == nil || item.Value > s.BestDrop.Value {
		dropped := item
		s.BestDrop = &dropped
		s.BestDropAt = time.Now()
	}
}

// PlayerStats Снимок агрегатов игрока
func (r *StatsRepo) PlayerStats(userID int) model.PlayerStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.state[userID]
	if !ok {
		return model.PlayerStats{WagersByGame: map[string]int{}}
	}

	byGame := make(map[string]int, len(s.WagersByGame))
	for game, count := range s.WagersByGame {
		byGame[game] = count
	}

	out := model.PlayerStats{
		TotalStaked:  s.TotalStaked,
		TotalPaidOut: s.TotalPaidOut,
		WagersByGame: byGame,
	}
	if s.BestDrop != nil {
		best := *s.BestDrop
		out.BestDrop = &best
	}

	return out
}

// Leaderboard Топ дропов: игроки, отсортированные по стоимости лучшего дропа
func (r *StatsRepo) Leaderboard(limit int) []model.LeaderboardEntry {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	entries := make([]model.LeaderboardEntry, 0, len(r.state))
	for _, s := range r.state {
		if s.BestDrop == nil {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			Name:     s.Name,
			BestDrop: *s.BestDrop,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].BestDrop.Value > entries[j].BestDrop.Value
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

// Вызывать только под блокировкой
func (r *StatsRepo) getOrCreate(userID int) *repoModel.PlayerState {
	s, ok := r.state[userID]
	if !ok {
		s = &repoModel.PlayerState{
			WagersByGame: make(map[string]int),
		}
		r.state[userID] = s
	}
	return s
}
