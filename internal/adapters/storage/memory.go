package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

type memoryEntry struct {
	room    domain.Room
	version core.Version
}

// MemoryStore is a process-local RoomStore. Rooms are cloned on the way in
// and out so callers never share slices with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[domain.RoomID]memoryEntry)}
}

func (s *MemoryStore) Fetch(ctx context.Context, id domain.RoomID) (domain.Room, core.Version, error) {
	if err := ctx.Err(); err != nil {
		return domain.Room{}, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, 0, fmt.Errorf("%w: %s", core.ErrRoomNotFound, id)
	}
	return e.room.Clone(), e.version, nil
}

func (s *MemoryStore) PersistIfUnchanged(ctx context.Context, id domain.RoomID, room domain.Room, expected core.Version) (core.Version, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rooms[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRoomNotFound, id)
	}
	if e.version != expected {
		return 0, fmt.Errorf("%w: room %s is at v%d, expected v%d", core.ErrVersionConflict, id, e.version, expected)
	}
	next := expected + 1
	s.rooms[id] = memoryEntry{room: room.Clone(), version: next}
	return next, nil
}

func (s *MemoryStore) Create(ctx context.Context, room domain.Room) (core.Version, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[room.ID]; ok {
		return 0, fmt.Errorf("%w: %s", core.ErrRoomExists, room.ID)
	}
	s.rooms[room.ID] = memoryEntry{room: room.Clone(), version: initialVersion}
	return initialVersion, nil
}

func (s *MemoryStore) Close() error { return nil }
