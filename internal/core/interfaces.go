//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_room_store.go -package=mocks
package core

import (
	"context"

	"github.com/dkeye/Hallway/internal/domain"
)

// Version is the token a store hands out on read and checks on write.
type Version uint64

// RoomStore persists whole rooms. Writes are conditional on the version
// observed at read time; there is no unconditional overwrite.
type RoomStore interface {
	Fetch(ctx context.Context, id domain.RoomID) (domain.Room, Version, error)
	PersistIfUnchanged(ctx context.Context, id domain.RoomID, room domain.Room, expected Version) (Version, error)
	Create(ctx context.Context, room domain.Room) (Version, error)
}

// Transition computes the next room from the current one.
// It must not mutate its argument.
type Transition func(room domain.Room) (domain.Room, error)
