package core

import (
	"fmt"

	"github.com/dkeye/Hallway/internal/domain"
)

// JoinRoom puts a newcomer in the lobby. A user already anywhere in the
// room is left where it is.
func JoinRoom(user domain.User) Transition {
	return guarded(func(room domain.Room) (domain.Room, error) {
		_, found, err := LocateConversation(room, user.Email)
		if err != nil {
			return domain.Room{}, err
		}
		if found {
			return room.Clone(), nil
		}
		return AddToLobby(room, user)
	})
}

// CreateConversation moves user into link, opening it if needed. The user
// always leaves its current conversation first, so one it was alone in is
// collected and opened again at the end.
func CreateConversation(user domain.User, link string) Transition {
	return guarded(func(room domain.Room) (domain.Room, error) {
		if link == domain.LobbyLink {
			return domain.Room{}, fmt.Errorf("%w: conversation link must not be empty", ErrInvalidLink)
		}
		next, err := vacate(room, user.Email)
		if err != nil {
			return domain.Room{}, err
		}
		return AddToOrCreate(next, user, link), nil
	})
}

// JoinConversation moves user into an existing conversation. The lookup
// runs after the user has left and empty conversations are collected, so a
// sole member rejoining its own link gets ErrConversationNotFound. The
// vacated room is never handed back.
func JoinConversation(user domain.User, link string) Transition {
	return guarded(func(room domain.Room) (domain.Room, error) {
		next, err := vacate(room, user.Email)
		if err != nil {
			return domain.Room{}, err
		}
		return AddToByLink(next, user, link)
	})
}

// LeaveConversation sends user back to the lobby, at its end.
func LeaveConversation(user domain.User) Transition {
	return guarded(func(room domain.Room) (domain.Room, error) {
		next, err := vacate(room, user.Email)
		if err != nil {
			return domain.Room{}, err
		}
		return AddToLobby(next, user)
	})
}

// LeaveRoom removes user from the room entirely.
func LeaveRoom(email string) Transition {
	return guarded(func(room domain.Room) (domain.Room, error) {
		return vacate(room, email)
	})
}

// vacate removes email and garbage-collects before any destination lookup,
// so a conversation the user just emptied counts as gone.
func vacate(room domain.Room, email string) (domain.Room, error) {
	next, err := RemoveFromCurrent(room, email)
	if err != nil {
		return domain.Room{}, err
	}
	return CleanupEmpty(next), nil
}

// guarded checks invariants on the way in and on the way out.
func guarded(step Transition) Transition {
	return func(room domain.Room) (domain.Room, error) {
		if err := CheckInvariants(room); err != nil {
			return domain.Room{}, err
		}
		next, err := step(room)
		if err != nil {
			return domain.Room{}, err
		}
		if err := CheckInvariants(next); err != nil {
			return domain.Room{}, err
		}
		return next, nil
	}
}
