// Package storage holds the RoomStore implementations.
package storage

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/core"
)

const initialVersion core.Version = 1

const (
	DriverBadger = "badger"
	DriverMemory = "memory"
)

// Store is a RoomStore that owns resources.
type Store interface {
	core.RoomStore
	Close() error
}

func Open(driver, path string, inMemory bool) (Store, error) {
	switch driver {
	case DriverMemory:
		log.Info().Str("module", "adapters.storage").Msg("using in-process memory store")
		return NewMemoryStore(), nil
	case DriverBadger, "":
		log.Info().Str("module", "adapters.storage").Str("path", path).Bool("in_memory", inMemory).Msg("opening badger store")
		return OpenBadger(path, inMemory)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// badgerLogger routes badger's own logging to zerolog.
type badgerLogger struct {
	logger zerolog.Logger
}

func newBadgerLogger() badgerLogger {
	return badgerLogger{logger: log.With().Str("module", "adapters.storage.badger").Logger()}
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msg(trim(format, args))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msg(trim(format, args))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msg(trim(format, args))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msg(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
