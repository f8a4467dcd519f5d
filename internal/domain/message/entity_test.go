package message

import (
	"testing"
	"time"

	"chat-store/internal/docstore"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "users/u1/chats", ChatsPath("u1"))
	assert.Equal(t, "users/u1/chats/c1/messages", MessagesPath("u1", "c1"))
}

func TestDocumentRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	doc := docstore.Document{
		Data:      Message{SenderID: "s1", Text: "hello"}.ToData(),
		CreatedAt: created,
	}

	msg := FromDocument(doc)
	assert.Equal(t, "s1", msg.SenderID)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, created, msg.Timestamp)
}

func TestToDataOmitsTimestamp(t *testing.T) {
	data := Message{SenderID: "s1", Text: "hello", Timestamp: time.Now()}.ToData()
	_, ok := data["timestamp"]
	assert.False(t, ok, "timestamp is assigned by the store, not the caller")
}
