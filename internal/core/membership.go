package core

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/dkeye/Hallway/internal/domain"
)

// The functions below never touch their input room; each returns a fresh
// value built from a clone.

// LocateConversation returns the conversation currently holding email.
func LocateConversation(room domain.Room, email string) (domain.Conversation, bool, error) {
	holders := lo.Filter(room.Conversations, func(c domain.Conversation, _ int) bool {
		return c.Has(email)
	})
	switch len(holders) {
	case 0:
		return domain.Conversation{}, false, nil
	case 1:
		return holders[0].Clone(), true, nil
	default:
		links := lo.Map(holders, func(c domain.Conversation, _ int) string { return c.Link })
		return domain.Conversation{}, false, fmt.Errorf("%w: %s found in conversations %q", ErrInvariantViolation, email, links)
	}
}

// RemoveFromCurrent drops email from whichever conversation holds it.
// An email that is nowhere in the room is not an error.
func RemoveFromCurrent(room domain.Room, email string) (domain.Room, error) {
	if _, _, err := LocateConversation(room, email); err != nil {
		return domain.Room{}, err
	}
	next := room.Clone()
	for i, c := range next.Conversations {
		next.Conversations[i].Users = lo.Filter(c.Users, func(u domain.User, _ int) bool {
			return u.Email != email
		})
	}
	return next, nil
}

// CleanupEmpty removes every empty conversation except the lobby.
func CleanupEmpty(room domain.Room) domain.Room {
	next := room.Clone()
	next.Conversations = lo.Filter(next.Conversations, func(c domain.Conversation, _ int) bool {
		return c.IsLobby() || !c.IsEmpty()
	})
	return next
}

// AddToByLink appends user to the conversation whose link matches exactly.
// Callers remove the user from its previous conversation first.
func AddToByLink(room domain.Room, user domain.User, link string) (domain.Room, error) {
	_, idx, ok := lo.FindIndexOf(room.Conversations, func(c domain.Conversation) bool {
		return c.Link == link
	})
	if !ok {
		return domain.Room{}, fmt.Errorf("%w: %q", ErrConversationNotFound, link)
	}
	next := room.Clone()
	next.Conversations[idx].Users = append(next.Conversations[idx].Users, user)
	return next, nil
}

// AddToOrCreate behaves like AddToByLink but opens a new conversation
// seeded with user when link is unknown.
func AddToOrCreate(room domain.Room, user domain.User, link string) domain.Room {
	if next, err := AddToByLink(room, user, link); err == nil {
		return next
	}
	next := room.Clone()
	next.Conversations = append(next.Conversations, domain.NewConversation(link, user))
	return next
}

func AddToLobby(room domain.Room, user domain.User) (domain.Room, error) {
	next, err := AddToByLink(room, user, domain.LobbyLink)
	if errors.Is(err, ErrConversationNotFound) {
		return domain.Room{}, fmt.Errorf("%w: lobby is missing", ErrInvariantViolation)
	}
	return next, err
}

// CheckInvariants reports the first broken room invariant.
func CheckInvariants(room domain.Room) error {
	if n := lo.CountBy(room.Conversations, domain.Conversation.IsLobby); n != 1 {
		return fmt.Errorf("%w: room %s has %d lobby conversations", ErrInvariantViolation, room.ID, n)
	}
	links := make(map[string]struct{}, len(room.Conversations))
	owners := make(map[string]string)
	for _, c := range room.Conversations {
		if _, dup := links[c.Link]; dup {
			return fmt.Errorf("%w: duplicate conversation link %q", ErrInvariantViolation, c.Link)
		}
		links[c.Link] = struct{}{}
		if !c.IsLobby() && c.IsEmpty() {
			return fmt.Errorf("%w: conversation %q is empty", ErrInvariantViolation, c.Link)
		}
		for _, u := range c.Users {
			if prev, dup := owners[u.Email]; dup {
				return fmt.Errorf("%w: %s in both %q and %q", ErrInvariantViolation, u.Email, prev, c.Link)
			}
			owners[u.Email] = c.Link
		}
	}
	return nil
}
