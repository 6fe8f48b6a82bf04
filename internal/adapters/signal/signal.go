// Package signal pushes room state to browsers over websocket.
package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/app/orch"
	"github.com/dkeye/Hallway/internal/config"
	"github.com/dkeye/Hallway/internal/domain"
)

var (
	ErrBackpressure = errors.New("backpressure")
	ErrClosed       = errors.New("connection closed")
)

const (
	defaultPollInterval = time.Second
	defaultPingPeriod   = 54 * time.Second
	defaultReadLimit    = 4096
	writeWait           = 5 * time.Second
	sendBuffer          = 32
)

// WatchController serves one watcher per websocket. Each watcher polls the
// store on its own; watchers share nothing.
type WatchController struct {
	Orch         *orch.Orchestrator
	PollInterval time.Duration
	PingPeriod   time.Duration
	ReadLimit    int64
}

func NewWatchController(o *orch.Orchestrator, cfg *config.Config) *WatchController {
	ctl := &WatchController{
		Orch:         o,
		PollInterval: cfg.WatchPollInterval,
		PingPeriod:   cfg.PingPeriod,
		ReadLimit:    cfg.ReadLimit,
	}
	if ctl.PollInterval <= 0 {
		ctl.PollInterval = defaultPollInterval
	}
	if ctl.PingPeriod <= 0 {
		ctl.PingPeriod = defaultPingPeriod
	}
	if ctl.ReadLimit <= 0 {
		ctl.ReadLimit = defaultReadLimit
	}
	return ctl
}

type WsWatchConn struct {
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	closed bool
}

func (c *WsWatchConn) TrySend(f []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

// Close stops accepting frames. The write pump flushes what is queued and
// then closes the socket.
func (c *WsWatchConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (ctl *WatchController) HandleWatch(ctx context.Context, c *gin.Context) {
	sid := c.GetString("client_token")
	roomID := domain.RoomID(c.Param("roomId"))

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Str("sid", sid).Msg("ws upgrade")
		return
	}
	log.Info().Str("module", "signal").Str("sid", sid).Str("room", string(roomID)).Msg("new watch connection")

	conn := &WsWatchConn{
		conn: ws,
		send: make(chan []byte, sendBuffer),
	}
	ctx, cancel := context.WithCancel(ctx)

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, sid, conn)
	go ctl.watchRoom(ctx, sid, roomID, conn)
}
