package http

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/domain"
)

const (
	sessionEmail  = "user_email"
	sessionName   = "user_name"
	sessionAvatar = "user_avatar"
)

// resolveUser prefers the user from the body and falls back to the one
// remembered for this browser.
func resolveUser(c *gin.Context, p UserPayload) domain.User {
	if p.Email != "" {
		return domain.User{Email: p.Email, Name: p.Name, Avatar: p.Avatar}
	}
	s := sessions.Default(c)
	email, _ := s.Get(sessionEmail).(string)
	name, _ := s.Get(sessionName).(string)
	avatar, _ := s.Get(sessionAvatar).(string)
	return domain.User{Email: email, Name: name, Avatar: avatar}
}

func rememberUser(c *gin.Context, u domain.User) {
	s := sessions.Default(c)
	s.Set(sessionEmail, u.Email)
	s.Set(sessionName, u.Name)
	s.Set(sessionAvatar, u.Avatar)
	if err := s.Save(); err != nil {
		log.Warn().Err(err).Str("module", "adapters.http").Str("sid", c.GetString("client_token")).Msg("session save failed")
	}
}
