package services

import (
	"context"

	"chat-store/internal/docstore"
	"chat-store/internal/domain/message"
	chat_errors "chat-store/pkg/errors"
	"chat-store/pkg/logger"
)

// MessageService implements the three operations. Each one is a
// self-contained validate, call-store, respond sequence; there is no
// state shared between invocations beyond the injected store client.
type MessageService struct {
	store  docstore.Store
	logger *logger.Logger
}

func NewMessageService(store docstore.Store, l *logger.Logger) *MessageService {
	return &MessageService{store: store, logger: l}
}

type PostMessageCommand struct {
	UserID   string
	Text     string
	SenderID string
	ChatID   string // optional, generated when empty
}

type PostMessageResult struct {
	ChatID    string
	MessageID string
}

// PostMessage writes one message document. When the command carries no
// chat identifier, a fresh one is minted under the user's chat
// collection; no chat-level document is written, the chat exists only
// as a collection prefix.
func (s *MessageService) PostMessage(ctx context.Context, cmd PostMessageCommand) (PostMessageResult, error) {
	switch {
	case cmd.Text == "":
		return PostMessageResult{}, chat_errors.InvalidArgument("text is required")
	case cmd.SenderID == "":
		return PostMessageResult{}, chat_errors.InvalidArgument("senderId is required")
	case cmd.UserID == "":
		return PostMessageResult{}, chat_errors.InvalidArgument("userId is required")
	}

	chatID := cmd.ChatID
	if chatID == "" {
		chatID = s.store.GenerateID(message.ChatsPath(cmd.UserID))
	}

	msg := message.Message{SenderID: cmd.SenderID, Text: cmd.Text}
	doc, err := s.store.AddDocument(ctx, message.MessagesPath(cmd.UserID, chatID), msg.ToData())
	if err != nil {
		s.logger.ErrorfCtx(ctx, "post message failed for user %s: %s", cmd.UserID, err)
		return PostMessageResult{}, chat_errors.Unknown("failed to store message", err)
	}

	return PostMessageResult{ChatID: chatID, MessageID: doc.ID}, nil
}

// GetChatMessages reads the full message collection of one chat. A chat
// that was never written to yields an empty slice, not an error.
func (s *MessageService) GetChatMessages(ctx context.Context, userID, chatID string) ([]message.Message, error) {
	if err := requireChatParams(userID, chatID); err != nil {
		return nil, err
	}

	docs, err := s.store.QueryCollection(ctx, message.MessagesPath(userID, chatID))
	if err != nil {
		s.logger.ErrorfCtx(ctx, "get chat %s/%s failed: %s", userID, chatID, err)
		return nil, chat_errors.Unknown("failed to read chat messages", err)
	}

	messages := make([]message.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, message.FromDocument(doc))
	}
	return messages, nil
}

// DeleteChatMessages removes every message of the chat in one batch
// commit and reports how many documents went away. Deleting an empty or
// unknown chat succeeds with zero deletions.
func (s *MessageService) DeleteChatMessages(ctx context.Context, userID, chatID string) (int, error) {
	if err := requireChatParams(userID, chatID); err != nil {
		return 0, err
	}

	docs, err := s.store.QueryCollection(ctx, message.MessagesPath(userID, chatID))
	if err != nil {
		s.logger.ErrorfCtx(ctx, "delete chat %s/%s failed on read: %s", userID, chatID, err)
		return 0, chat_errors.Unknown("failed to read chat messages", err)
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		paths = append(paths, doc.Path)
	}
	if err := s.store.BatchDelete(ctx, paths); err != nil {
		s.logger.ErrorfCtx(ctx, "delete chat %s/%s failed on commit: %s", userID, chatID, err)
		return 0, chat_errors.Unknown("failed to delete chat messages", err)
	}
	return len(paths), nil
}

func requireChatParams(userID, chatID string) error {
	if userID == "" {
		return chat_errors.InvalidArgument("userId is required")
	}
	if chatID == "" {
		return chat_errors.InvalidArgument("chatId is required")
	}
	return nil
}
