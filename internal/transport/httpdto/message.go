package httpdto

import "chat-store/internal/domain/message"

type PostMessageRequest struct {
	UserID   string `json:"userId"`
	Text     string `json:"text"`
	SenderID string `json:"senderId"`
	ChatID   string `json:"chatId,omitempty"`
}

type PostMessageResponse struct {
	Status    string `json:"status"`
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
}

type GetChatResponse struct {
	Status   string            `json:"status"`
	Messages []message.Message `json:"messages"`
}

type DeleteChatResponse struct {
	Status string `json:"status"`
}
