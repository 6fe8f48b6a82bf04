package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

// envelope is the stored document. The version lives next to the room so a
// write can check and bump it inside one badger transaction.
type envelope struct {
	Version core.Version `json:"version"`
	Room    domain.Room  `json:"room"`
}

type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadger opens a badger database at path, or a purely in-memory one.
func OpenBadger(path string, inMemory bool) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	db, err := badger.Open(opts.WithLogger(newBadgerLogger()))
	if err != nil {
		return nil, fmt.Errorf("%w: open badger: %v", core.ErrStore, err)
	}
	return NewBadgerStore(db), nil
}

func (s *BadgerStore) Close() error { return s.db.Close() }

// roomKey is formatted as "room:{id}".
func roomKey(id domain.RoomID) []byte {
	return []byte("room:" + string(id))
}

func (s *BadgerStore) Fetch(ctx context.Context, id domain.RoomID) (domain.Room, core.Version, error) {
	if err := ctx.Err(); err != nil {
		return domain.Room{}, 0, err
	}
	var env envelope
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &env)
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return domain.Room{}, 0, fmt.Errorf("%w: %s", core.ErrRoomNotFound, id)
	case err != nil:
		return domain.Room{}, 0, fmt.Errorf("%w: fetch %s: %v", core.ErrStore, id, err)
	}
	return env.Room, env.Version, nil
}

// PersistIfUnchanged reads the stored version and writes in the same update
// transaction. A concurrent commit on the key makes badger reject ours with
// ErrConflict, which is reported as a version conflict too.
func (s *BadgerStore) PersistIfUnchanged(ctx context.Context, id domain.RoomID, room domain.Room, expected core.Version) (core.Version, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	next := expected + 1
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(id))
		if err != nil {
			return err
		}
		var head struct {
			Version core.Version `json:"version"`
		}
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &head) }); err != nil {
			return err
		}
		if head.Version != expected {
			return fmt.Errorf("%w: room %s is at v%d, expected v%d", core.ErrVersionConflict, id, head.Version, expected)
		}
		data, err := json.Marshal(envelope{Version: next, Room: room})
		if err != nil {
			return err
		}
		if err := txn.Set(roomKey(id), data); err != nil {
			return err
		}
		// last chance to abandon before commit
		return ctx.Err()
	})
	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return 0, fmt.Errorf("%w: %s", core.ErrRoomNotFound, id)
	case errors.Is(err, core.ErrVersionConflict):
		return 0, err
	case errors.Is(err, badger.ErrConflict):
		return 0, fmt.Errorf("%w: room %s: %v", core.ErrVersionConflict, id, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return 0, err
	default:
		return 0, fmt.Errorf("%w: persist %s: %v", core.ErrStore, id, err)
	}
}

func (s *BadgerStore) Create(ctx context.Context, room domain.Room) (core.Version, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := json.Marshal(envelope{Version: initialVersion, Room: room})
	if err != nil {
		return 0, fmt.Errorf("%w: encode %s: %v", core.ErrStore, room.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(roomKey(room.ID))
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", core.ErrRoomExists, room.ID)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(roomKey(room.ID), data)
	})
	switch {
	case err == nil:
		return initialVersion, nil
	case errors.Is(err, core.ErrRoomExists):
		return 0, err
	case errors.Is(err, badger.ErrConflict):
		return 0, fmt.Errorf("%w: %s", core.ErrRoomExists, room.ID)
	default:
		return 0, fmt.Errorf("%w: create %s: %v", core.ErrStore, room.ID, err)
	}
}
