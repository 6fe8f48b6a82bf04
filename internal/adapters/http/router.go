package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/adapters/signal"
	"github.com/dkeye/Hallway/internal/app/orch"
	"github.com/dkeye/Hallway/internal/config"
)

func genClientToken() string {
	idStr := uuid.NewString()
	return idStr
}

// ClientTokenMiddleware tags every browser with a long-lived id used to
// correlate log lines.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, orch *orch.Orchestrator) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("HallwaySessions", store))
	r.Use(ClientTokenMiddleware())

	log.Info().Str("module", "adapters.http").Str("mode", cfg.Mode).Msg("router setup")

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rooms := &RoomHandlers{Orch: orch}
	watch := signal.NewWatchController(orch, cfg)

	api := r.Group("/api")

	api.POST("/rooms", rooms.CreateRoom)
	api.GET("/rooms/:roomId", rooms.GetRoom)
	api.GET("/rooms/:roomId/watch", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("sid", c.GetString("client_token")).
			Str("room", c.Param("roomId")).Msg("ws watch endpoint hit")
		watch.HandleWatch(ctx, c)
	})

	api.POST("/room/join", rooms.JoinRoom)
	api.POST("/room/leave", rooms.LeaveRoom)
	api.POST("/conversation/create", rooms.CreateConversation)
	api.POST("/conversation/join", rooms.JoinConversation)
	api.POST("/conversation/leave", rooms.LeaveConversation)

	return r
}
