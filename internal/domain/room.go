package domain

type RoomID string

// Room is the shared document. The store keeps its version beside it.
type Room struct {
	ID            RoomID         `json:"id"`
	Title         string         `json:"title,omitempty"`
	Conversations []Conversation `json:"conversations"`
}

// NewRoom returns a room holding only an empty lobby.
func NewRoom(id RoomID, title string) Room {
	return Room{
		ID:            id,
		Title:         title,
		Conversations: []Conversation{NewConversation(LobbyLink)},
	}
}

// Clone deep-copies the room so callers can transform it freely.
func (r Room) Clone() Room {
	out := Room{ID: r.ID, Title: r.Title}
	if r.Conversations != nil {
		out.Conversations = make([]Conversation, len(r.Conversations))
		for i, c := range r.Conversations {
			out.Conversations[i] = c.Clone()
		}
	}
	return out
}

func (r Room) UserCount() int {
	n := 0
	for _, c := range r.Conversations {
		n += len(c.Users)
	}
	return n
}
