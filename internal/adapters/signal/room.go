package signal

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

type RoomStateFrame struct {
	Type    string       `json:"type"`
	Version core.Version `json:"version"`
	Room    domain.Room  `json:"room"`
}

type ErrorFrame struct {
	Type         string `json:"type"`
	ErrorKey     string `json:"errorKey"`
	ErrorMessage string `json:"errorMessage"`
}

// watchRoom pushes the room whenever its version moves. Frames dropped on
// backpressure are retried on the next tick.
func (ctl *WatchController) watchRoom(
	ctx context.Context,
	sid string,
	id domain.RoomID,
	conn *WsWatchConn,
) {
	ticker := time.NewTicker(ctl.PollInterval)
	defer ticker.Stop()

	var last core.Version
	for {
		room, version, err := ctl.Orch.Snapshot(ctx, id)
		switch {
		case errors.Is(err, core.ErrRoomNotFound):
			log.Info().Str("module", "signal").Str("sid", sid).Str("room", string(id)).Msg("watched room not found")
			_ = ctl.sendJSON(conn, ErrorFrame{
				Type:         "error",
				ErrorKey:     "error.roomNotFound",
				ErrorMessage: "Room Not Found, is the ID Correct?",
			})
			conn.Close()
			return
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			log.Warn().Err(err).Str("module", "signal").Str("sid", sid).Str("room", string(id)).Msg("watch poll failed")
		case version != last:
			err := ctl.sendJSON(conn, RoomStateFrame{Type: "room_state", Version: version, Room: room})
			switch {
			case err == nil:
				last = version
			case errors.Is(err, ErrClosed):
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
