package domain

// LobbyLink marks the conversation users land in when they are in a room
// but not in any named conversation.
const LobbyLink = ""

// Conversation is a named group inside a room.
// Users form a set keyed by email, kept in join order.
type Conversation struct {
	Link  string `json:"link"`
	Users []User `json:"users"`
}

// NewConversation avoids raw literals in the engine and keeps construction obvious.
func NewConversation(link string, users ...User) Conversation {
	out := make([]User, len(users))
	copy(out, users)
	return Conversation{Link: link, Users: out}
}

func (c Conversation) IsLobby() bool { return c.Link == LobbyLink }

func (c Conversation) IsEmpty() bool { return len(c.Users) == 0 }

func (c Conversation) Has(email string) bool {
	for _, u := range c.Users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (c Conversation) Clone() Conversation {
	return NewConversation(c.Link, c.Users...)
}
