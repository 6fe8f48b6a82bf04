package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Hallway/internal/domain"
)

var (
	alice = domain.User{Email: "alice@example.com", Name: "Alice", Avatar: "https://img.example.com/a.png"}
	bob   = domain.User{Email: "bob@example.com", Name: "Bob"}
	carol = domain.User{Email: "carol@example.com", Name: "Carol"}
)

func roomWith(convs ...domain.Conversation) domain.Room {
	return domain.Room{ID: "r1", Conversations: convs}
}

func usersOf(t *testing.T, room domain.Room, link string) []domain.User {
	t.Helper()
	for _, c := range room.Conversations {
		if c.Link == link {
			return c.Users
		}
	}
	t.Fatalf("conversation %q not found", link)
	return nil
}

func hasLink(room domain.Room, link string) bool {
	for _, c := range room.Conversations {
		if c.Link == link {
			return true
		}
	}
	return false
}

func TestScenario_RoomLifecycle(t *testing.T) {
	req := require.New(t)

	r0 := domain.NewRoom("r1", "")

	r1, err := JoinRoom(alice)(r0)
	req.NoError(err)
	req.Equal(roomWith(domain.NewConversation("", alice)), r1)

	r2, err := CreateConversation(alice, "room42")(r1)
	req.NoError(err)
	req.Equal(roomWith(
		domain.NewConversation(""),
		domain.NewConversation("room42", alice),
	), r2)

	r3, err := JoinRoom(bob)(r2)
	req.NoError(err)
	req.Equal([]domain.User{bob}, usersOf(t, r3, ""))

	r4, err := JoinConversation(bob, "room42")(r3)
	req.NoError(err)
	req.Equal(roomWith(
		domain.NewConversation(""),
		domain.NewConversation("room42", alice, bob),
	), r4)
}

func TestJoinRoom(t *testing.T) {
	t.Run("should place a newcomer in the lobby exactly once", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation("", carol),
			domain.NewConversation("x", bob),
		)

		next, err := JoinRoom(alice)(room)

		req.NoError(err)
		req.Equal([]domain.User{carol, alice}, usersOf(t, next, ""))
		req.Equal([]domain.User{bob}, usersOf(t, next, "x"))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		req := require.New(t)
		room := domain.NewRoom("r1", "")

		once, err := JoinRoom(alice)(room)
		req.NoError(err)
		twice, err := JoinRoom(alice)(once)
		req.NoError(err)

		req.Equal(once, twice)
	})

	t.Run("should not relocate a user already in a conversation", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("x", alice),
		)

		next, err := JoinRoom(alice)(room)

		req.NoError(err)
		req.Equal(room, next)
	})
}

func TestCreateConversation(t *testing.T) {
	t.Run("should move the user and collect the conversation it emptied", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
		)

		next, err := CreateConversation(alice, "b")(room)

		req.NoError(err)
		req.False(hasLink(next, "a"))
		req.True(hasLink(next, ""))
		req.Equal([]domain.User{alice}, usersOf(t, next, "b"))
	})

	t.Run("should keep the previous conversation when others remain", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice, bob),
		)

		next, err := CreateConversation(alice, "b")(room)

		req.NoError(err)
		req.Equal([]domain.User{bob}, usersOf(t, next, "a"))
		req.Equal([]domain.User{alice}, usersOf(t, next, "b"))
	})

	t.Run("should join an existing conversation with the same link", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation("", alice),
			domain.NewConversation("b", bob),
		)

		next, err := CreateConversation(alice, "b")(room)

		req.NoError(err)
		req.Len(next.Conversations, 2)
		req.Equal([]domain.User{bob, alice}, usersOf(t, next, "b"))
	})

	t.Run("should reopen the conversation the user just emptied at the end", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
			domain.NewConversation("b", bob),
		)

		next, err := CreateConversation(alice, "a")(room)

		req.NoError(err)
		req.Equal(roomWith(
			domain.NewConversation(""),
			domain.NewConversation("b", bob),
			domain.NewConversation("a", alice),
		), next)
	})

	t.Run("should move a user to the end of its own shared conversation", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice, bob),
		)

		next, err := CreateConversation(alice, "a")(room)

		req.NoError(err)
		req.Equal([]domain.User{bob, alice}, usersOf(t, next, "a"))
	})

	t.Run("should reject the lobby link", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(domain.NewConversation("", alice))

		_, err := CreateConversation(alice, "")(room)

		req.ErrorIs(err, ErrInvalidLink)
	})
}

func TestJoinConversation(t *testing.T) {
	t.Run("should fail on unknown link and leave the room untouched", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
		)
		before := room.Clone()

		next, err := JoinConversation(alice, "missing")(room)

		req.ErrorIs(err, ErrConversationNotFound)
		req.Equal(domain.Room{}, next)
		req.Equal(before, room)
	})

	t.Run("should not reuse the conversation a sole member just left", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation("", bob),
			domain.NewConversation("a", alice),
		)
		before := room.Clone()

		next, err := JoinConversation(alice, "a")(room)

		req.ErrorIs(err, ErrConversationNotFound)
		req.Equal(domain.Room{}, next)
		req.Equal(before, room)
	})

	t.Run("should move a user to the end of its own shared conversation", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice, bob),
		)

		next, err := JoinConversation(alice, "a")(room)

		req.NoError(err)
		req.Equal([]domain.User{bob, alice}, usersOf(t, next, "a"))
	})

	t.Run("should let a lobby user join a conversation", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation("", bob),
			domain.NewConversation("a", alice),
		)

		next, err := JoinConversation(bob, "a")(room)

		req.NoError(err)
		req.Empty(usersOf(t, next, ""))
		req.Equal([]domain.User{alice, bob}, usersOf(t, next, "a"))
	})

	t.Run("should move between named conversations", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
			domain.NewConversation("b", bob),
		)

		next, err := JoinConversation(alice, "b")(room)

		req.NoError(err)
		req.False(hasLink(next, "a"))
		req.Equal([]domain.User{bob, alice}, usersOf(t, next, "b"))
	})
}

func TestLeaveConversation(t *testing.T) {
	t.Run("should return the user to the lobby", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
		)

		next, err := LeaveConversation(alice)(room)

		req.NoError(err)
		req.Equal(roomWith(domain.NewConversation("", alice)), next)
	})

	t.Run("should add a user who was not in the room", func(t *testing.T) {
		req := require.New(t)
		room := domain.NewRoom("r1", "")

		next, err := LeaveConversation(bob)(room)

		req.NoError(err)
		req.Equal([]domain.User{bob}, usersOf(t, next, ""))
	})

	t.Run("should move a lobby user to the end of the lobby", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(domain.NewConversation("", alice, bob))

		next, err := LeaveConversation(alice)(room)

		req.NoError(err)
		req.Equal(roomWith(domain.NewConversation("", bob, alice)), next)
	})

	t.Run("should leave a sole lobby user where it is", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(domain.NewConversation("", alice))

		next, err := LeaveConversation(alice)(room)

		req.NoError(err)
		req.Equal(room, next)
	})
}

func TestLeaveRoom(t *testing.T) {
	req := require.New(t)
	room := roomWith(
		domain.NewConversation("", bob),
		domain.NewConversation("a", alice),
	)

	next, err := LeaveRoom(alice.Email)(room)
	req.NoError(err)
	req.Equal(roomWith(domain.NewConversation("", bob)), next)

	next, err = LeaveRoom(bob.Email)(next)
	req.NoError(err)
	req.Equal(roomWith(domain.NewConversation("")), next)

	again, err := LeaveRoom(bob.Email)(next)
	req.NoError(err)
	req.Equal(next, again)
}

func TestCleanupEmpty(t *testing.T) {
	req := require.New(t)
	room := roomWith(
		domain.NewConversation("a"),
		domain.NewConversation(""),
		domain.NewConversation("b", alice),
		domain.NewConversation("c"),
	)

	next := CleanupEmpty(room)

	req.Equal(roomWith(
		domain.NewConversation(""),
		domain.NewConversation("b", alice),
	), next)
	req.Len(room.Conversations, 4)
}

func TestRemoveFromCurrent(t *testing.T) {
	t.Run("should be a no-op for an absent user", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(domain.NewConversation("", bob))

		next, err := RemoveFromCurrent(room, alice.Email)

		req.NoError(err)
		req.Equal(room, next)
	})

	t.Run("should leave the emptied conversation for cleanup", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(
			domain.NewConversation(""),
			domain.NewConversation("a", alice),
		)

		next, err := RemoveFromCurrent(room, alice.Email)

		req.NoError(err)
		req.True(hasLink(next, "a"))
		req.Empty(usersOf(t, next, "a"))
		req.Equal([]domain.User{alice}, usersOf(t, room, "a"))
	})
}

func TestAddPrimitives(t *testing.T) {
	req := require.New(t)
	room := roomWith(domain.NewConversation(""))

	_, err := AddToByLink(room, alice, "nope")
	req.ErrorIs(err, ErrConversationNotFound)

	created := AddToOrCreate(room, alice, "nope")
	req.Equal([]domain.User{alice}, usersOf(t, created, "nope"))
	req.Len(room.Conversations, 1)

	lobby, err := AddToLobby(room, bob)
	req.NoError(err)
	req.Equal([]domain.User{bob}, usersOf(t, lobby, ""))

	_, err = AddToLobby(roomWith(domain.NewConversation("a", alice)), bob)
	req.ErrorIs(err, ErrInvariantViolation)
}

func TestInvariantViolations(t *testing.T) {
	cases := map[string]domain.Room{
		"no lobby":          roomWith(domain.NewConversation("a", alice)),
		"two lobbies":       roomWith(domain.NewConversation(""), domain.NewConversation("")),
		"duplicate link":    roomWith(domain.NewConversation(""), domain.NewConversation("a", alice), domain.NewConversation("a", bob)),
		"empty non-lobby":   roomWith(domain.NewConversation(""), domain.NewConversation("a")),
		"user in two":       roomWith(domain.NewConversation("", alice), domain.NewConversation("a", alice)),
		"user twice in one": roomWith(domain.NewConversation("", alice, alice)),
	}
	for name, room := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			req.ErrorIs(CheckInvariants(room), ErrInvariantViolation)

			_, err := LeaveConversation(bob)(room)
			req.ErrorIs(err, ErrInvariantViolation)
		})
	}

	t.Run("should report rather than pick one occurrence", func(t *testing.T) {
		req := require.New(t)
		room := roomWith(domain.NewConversation("", alice), domain.NewConversation("a", alice))

		_, _, err := LocateConversation(room, alice.Email)
		req.ErrorIs(err, ErrInvariantViolation)

		_, err = RemoveFromCurrent(room, alice.Email)
		req.ErrorIs(err, ErrInvariantViolation)
	})
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	room := roomWith(
		domain.NewConversation("", carol),
		domain.NewConversation("a", alice),
		domain.NewConversation("b", bob),
	)
	before := room.Clone()

	transitions := []Transition{
		JoinRoom(domain.User{Email: "dave@example.com"}),
		CreateConversation(alice, "c"),
		JoinConversation(alice, "b"),
		JoinConversation(carol, "missing"),
		LeaveConversation(bob),
		LeaveRoom(carol.Email),
	}
	for _, tr := range transitions {
		_, _ = tr(room)
		require.Equal(t, before, room)
	}
}
