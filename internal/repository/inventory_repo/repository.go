package inventory_repo

import (
	"cases_backend/internal/model"
	"cases_backend/internal/repository"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type repo struct {
	mtx     sync.Mutex
	entries map[int][]model.InventoryEntry
	drops   map[int][]model.Drop
}

func NewInventoryRepository() repository.InventoryRepository {
	return &repo{
		entries: make(map[int][]model.InventoryEntry),
		drops:   make(map[int][]model.Drop),
	}
}

// Grant - выдает игроку предмет, создавая новую запись инвентаря
func (r *repo) Grant(_ context.Context, userID int, item model.Item) (model.InventoryEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.grant(userID, item), nil
}

// Get - возвращает запись инвентаря по ее ID
func (r *repo) Get(_ context.Context, userID int, entryID string) (model.InventoryEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, e := range r.entries[userID] {
		if e.EntryID == entryID {
			return e, nil
		}
	}

	return model.InventoryEntry{}, model.ErrInvalidSelection
}

// Remove - удаляет запись инвентаря (продажа, апгрейд).
// Возвращает удаленную запись
func (r *repo) Remove(_ context.Context, userID int, entryID string) (model.InventoryEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := r.entries[userID]
	for i, e := range list {
		if e.EntryID == entryID {
			r.entries[userID] = append(list[:i:i], list[i+1:]...)
			return e, nil
		}
	}

	return model.InventoryEntry{}, model.ErrInvalidSelection
}

// Exchange - обмен по контракту: удаляет все entryIDs и выдает grant
// одним шагом под одной блокировкой. Если хотя бы одна запись не найдена
// или передана дважды — инвентарь не меняется вовсе
func (r *repo) Exchange(_ context.Context, userID int, entryIDs []string, grant model.Item) (model.InventoryEntry, []model.InventoryEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := r.entries[userID]

	// Сначала находим все записи, ничего не трогая
	seen := make(map[string]struct{}, len(entryIDs))
	consumed := make([]model.InventoryEntry, 0, len(entryIDs))
	for _, id := range entryIDs {
		if _, dup := seen[id]; dup {
			return model.InventoryEntry{}, nil, model.ErrInvalidSelection
		}
		seen[id] = struct{}{}

		found := false
		for _, e := range list {
			if e.EntryID == id {
				consumed = append(consumed, e)
				found = true
				break
			}
		}
		if !found {
			return model.InventoryEntry{}, nil, model.ErrInvalidSelection
		}
	}

	// Теперь применяем: удаляем изъятые и выдаем новый предмет
	kept := make([]model.InventoryEntry, 0, len(list))
	for _, e := range list {
		if _, gone := seen[e.EntryID]; !gone {
			kept = append(kept, e)
		}
	}
	r.entries[userID] = kept

	granted := r.grant(userID, grant)

	return granted, consumed, nil
}

// List - упорядоченный снимок инвентаря игрока
func (r *repo) List(_ context.Context, userID int) ([]model.InventoryEntry, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := r.entries[userID]
	out := make([]model.InventoryEntry, len(list))
	copy(out, list)

	return out, nil
}

// AddDrop - добавляет запись в историю выпадений
func (r *repo) AddDrop(_ context.Context, userID int, drop model.Drop) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.drops[userID] = append(r.drops[userID], drop)

	return nil
}

// Drops - упорядоченная история выпадений игрока
func (r *repo) Drops(_ context.Context, userID int) ([]model.Drop, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	list := r.drops[userID]
	out := make([]model.Drop, len(list))
	copy(out, list)

	return out, nil
}

// Вызывать только под блокировкой
func (r *repo) grant(userID int, item model.Item) model.InventoryEntry {
	entry := model.InventoryEntry{
		EntryID:    uuid.NewString(),
		Item:       item,
		AcquiredAt: time.Now(),
	}
	r.entries[userID] = append(r.entries[userID], entry)
	return entry
}
