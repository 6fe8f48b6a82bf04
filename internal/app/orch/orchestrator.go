package orch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/app"
	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

// Orchestrator runs every membership change as fetch, transition,
// conditional persist. Nothing is kept between calls.
type Orchestrator struct {
	Store        core.RoomStore
	Policy       app.RetryPolicy
	StoreTimeout time.Duration
}

// Apply commits transition against the room, recomputing it from a fresh
// read whenever the persist loses a version race. The whole computed room
// is written once or not at all.
func (o *Orchestrator) Apply(ctx context.Context, id domain.RoomID, op string, transition core.Transition) (domain.Room, error) {
	attempt := 0
	notify := func(err error, wait time.Duration) {
		log.Debug().Str("module", "app.orch").Str("room", string(id)).Str("op", op).
			Int("attempt", attempt).Dur("wait", wait).Err(err).Msg("version conflict, retrying")
	}

	room, err := backoff.Retry(ctx, func() (domain.Room, error) {
		attempt++
		current, version, err := o.fetch(ctx, id)
		if err != nil {
			return domain.Room{}, backoff.Permanent(err)
		}
		next, err := transition(current)
		if err != nil {
			return domain.Room{}, backoff.Permanent(err)
		}
		if reflect.DeepEqual(current, next) {
			return next, nil
		}
		if _, err := o.persist(ctx, id, next, version); err != nil {
			if errors.Is(err, core.ErrVersionConflict) {
				return domain.Room{}, err
			}
			return domain.Room{}, backoff.Permanent(err)
		}
		return next, nil
	}, o.Policy.Options(notify)...)

	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		if errors.Is(err, core.ErrVersionConflict) {
			err = fmt.Errorf("%w: %s on room %s gave up after %d attempts", core.ErrConflict, op, id, attempt)
		}
		log.Warn().Str("module", "app.orch").Str("room", string(id)).Str("op", op).
			Int("attempt", attempt).Err(err).Msg("membership change failed")
		return domain.Room{}, err
	}
	log.Info().Str("module", "app.orch").Str("room", string(id)).Str("op", op).
		Int("attempt", attempt).Int("users", room.UserCount()).Msg("membership change applied")
	return room, nil
}

// Snapshot returns the current room and its version.
func (o *Orchestrator) Snapshot(ctx context.Context, id domain.RoomID) (domain.Room, core.Version, error) {
	return o.fetch(ctx, id)
}

type snapshot struct {
	room    domain.Room
	version core.Version
}

func (o *Orchestrator) fetch(ctx context.Context, id domain.RoomID) (domain.Room, core.Version, error) {
	s, err := withTimeout(ctx, o.timeout(), func(ctx context.Context) (snapshot, error) {
		room, version, err := o.Store.Fetch(ctx, id)
		return snapshot{room: room, version: version}, err
	})
	return s.room, s.version, err
}

func (o *Orchestrator) persist(ctx context.Context, id domain.RoomID, room domain.Room, expected core.Version) (core.Version, error) {
	return withTimeout(ctx, o.timeout(), func(ctx context.Context) (core.Version, error) {
		return o.Store.PersistIfUnchanged(ctx, id, room, expected)
	})
}

func (o *Orchestrator) create(ctx context.Context, room domain.Room) (core.Version, error) {
	return withTimeout(ctx, o.timeout(), func(ctx context.Context) (core.Version, error) {
		return o.Store.Create(ctx, room)
	})
}

func (o *Orchestrator) timeout() time.Duration {
	if o.StoreTimeout <= 0 {
		return app.DefaultStoreTimeout
	}
	return o.StoreTimeout
}

// withTimeout runs a store call under its own deadline and stops waiting
// once the deadline passes. A call that finishes late is dropped.
func withTimeout[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := call(ctx)
		done <- result{val: val, err: err}
	}()

	var zero T
	select {
	case r := <-done:
		if errors.Is(r.err, context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w: %v", core.ErrStoreTimeout, r.err)
		}
		return r.val, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w after %s", core.ErrStoreTimeout, timeout)
		}
		return zero, ctx.Err()
	}
}
