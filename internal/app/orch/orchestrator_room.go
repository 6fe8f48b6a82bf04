package orch

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Hallway/internal/core"
	"github.com/dkeye/Hallway/internal/domain"
)

func (o *Orchestrator) GetRoom(ctx context.Context, id domain.RoomID) (domain.Room, error) {
	room, _, err := o.fetch(ctx, id)
	return room, err
}

// CreateRoom stores a fresh room holding only the empty lobby.
func (o *Orchestrator) CreateRoom(ctx context.Context, title string) (domain.Room, error) {
	room := domain.NewRoom(domain.RoomID(uuid.NewString()), title)
	if _, err := o.create(ctx, room); err != nil {
		log.Warn().Str("module", "app.orch").Str("room", string(room.ID)).Err(err).Msg("create room failed")
		return domain.Room{}, err
	}
	log.Info().Str("module", "app.orch").Str("room", string(room.ID)).Str("title", title).Msg("room created")
	return room, nil
}

func (o *Orchestrator) JoinRoom(ctx context.Context, id domain.RoomID, user domain.User) (domain.Room, error) {
	if err := user.Validate(); err != nil {
		return domain.Room{}, err
	}
	return o.Apply(ctx, id, "join_room", core.JoinRoom(user))
}

func (o *Orchestrator) LeaveRoom(ctx context.Context, id domain.RoomID, user domain.User) (domain.Room, error) {
	if err := user.Validate(); err != nil {
		return domain.Room{}, err
	}
	return o.Apply(ctx, id, "leave_room", core.LeaveRoom(user.Email))
}

func (o *Orchestrator) CreateConversation(ctx context.Context, id domain.RoomID, user domain.User, link string) (domain.Room, error) {
	if err := user.Validate(); err != nil {
		return domain.Room{}, err
	}
	return o.Apply(ctx, id, "create_conversation", core.CreateConversation(user, link))
}

func (o *Orchestrator) JoinConversation(ctx context.Context, id domain.RoomID, user domain.User, link string) (domain.Room, error) {
	if err := user.Validate(); err != nil {
		return domain.Room{}, err
	}
	return o.Apply(ctx, id, "join_conversation", core.JoinConversation(user, link))
}

func (o *Orchestrator) LeaveConversation(ctx context.Context, id domain.RoomID, user domain.User) (domain.Room, error) {
	if err := user.Validate(); err != nil {
		return domain.Room{}, err
	}
	return o.Apply(ctx, id, "leave_conversation", core.LeaveConversation(user))
}
