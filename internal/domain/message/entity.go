package message

import (
	"time"

	"chat-store/internal/docstore"
)

// Message is the stored message shape. Timestamp is assigned by the store
// at write time; messages are never mutated after creation.
type Message struct {
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Store layout: users/{userId}/chats/{chatId}/messages/{messageId}.

// ChatsPath returns the chat collection of a user.
func ChatsPath(userID string) string {
	return "users/" + userID + "/chats"
}

// MessagesPath returns the message collection of a chat.
func MessagesPath(userID, chatID string) string {
	return ChatsPath(userID) + "/" + chatID + "/messages"
}

// FromDocument rebuilds a Message from its stored document. Fields the
// document does not carry come back zero-valued; the store is schema-less.
func FromDocument(doc docstore.Document) Message {
	msg := Message{Timestamp: doc.CreatedAt}
	if senderID, ok := doc.Data["senderId"].(string); ok {
		msg.SenderID = senderID
	}
	if text, ok := doc.Data["text"].(string); ok {
		msg.Text = text
	}
	return msg
}

// ToData returns the document payload for a new message. The timestamp is
// deliberately absent; the store fills it in on write.
func (m Message) ToData() map[string]any {
	return map[string]any{
		"senderId": m.SenderID,
		"text":     m.Text,
	}
}
