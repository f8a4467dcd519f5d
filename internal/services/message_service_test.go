package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"chat-store/internal/docstore"
	chat_errors "chat-store/pkg/errors"
	"chat-store/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*MessageService, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	return NewMessageService(store, logger.New(logger.DevelopmentMode)), store
}

func TestPostMessageGeneratesChatID(t *testing.T) {
	svc, _ := newTestService(t)
	start := time.Now()

	result, err := svc.PostMessage(context.Background(), PostMessageCommand{
		UserID:   "u1",
		Text:     "hello there",
		SenderID: "s1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ChatID)
	assert.NotEmpty(t, result.MessageID)

	messages, err := svc.GetChatMessages(context.Background(), "u1", result.ChatID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "s1", messages[0].SenderID)
	assert.Equal(t, "hello there", messages[0].Text)
	assert.False(t, messages[0].Timestamp.Before(start))
}

func TestPostMessageUsesGivenChatID(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.PostMessage(context.Background(), PostMessageCommand{
		UserID:   "u1",
		Text:     "hi",
		SenderID: "s1",
		ChatID:   "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", result.ChatID)
}

func TestPostMessageNotIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	cmd := PostMessageCommand{UserID: "u1", Text: "same", SenderID: "s1", ChatID: "c1"}

	first, err := svc.PostMessage(context.Background(), cmd)
	require.NoError(t, err)
	second, err := svc.PostMessage(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEqual(t, first.MessageID, second.MessageID)

	messages, err := svc.GetChatMessages(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestPostMessageValidation(t *testing.T) {
	testCases := []struct {
		name string
		cmd  PostMessageCommand
	}{
		{name: "missing_text", cmd: PostMessageCommand{UserID: "u1", SenderID: "s1"}},
		{name: "missing_sender", cmd: PostMessageCommand{UserID: "u1", Text: "hi"}},
		{name: "missing_user", cmd: PostMessageCommand{Text: "hi", SenderID: "s1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store := newTestService(t)

			_, err := svc.PostMessage(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.Equal(t, chat_errors.CodeInvalidArgument, chat_errors.CodeOf(err))
			assert.Zero(t, store.Len(), "no document may be written on validation failure")
		})
	}
}

func TestGetChatMessagesValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetChatMessages(context.Background(), "", "c1")
	assert.Equal(t, chat_errors.CodeInvalidArgument, chat_errors.CodeOf(err))

	_, err = svc.GetChatMessages(context.Background(), "u1", "")
	assert.Equal(t, chat_errors.CodeInvalidArgument, chat_errors.CodeOf(err))
}

func TestGetChatMessagesEmptyChat(t *testing.T) {
	svc, _ := newTestService(t)

	messages, err := svc.GetChatMessages(context.Background(), "u1", "never-written")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestChatIsolation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.PostMessage(context.Background(), PostMessageCommand{UserID: "u1", Text: "for A", SenderID: "s1", ChatID: "A"})
	require.NoError(t, err)
	_, err = svc.PostMessage(context.Background(), PostMessageCommand{UserID: "u1", Text: "for B", SenderID: "s1", ChatID: "B"})
	require.NoError(t, err)

	messages, err := svc.GetChatMessages(context.Background(), "u1", "B")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for B", messages[0].Text)
}

func TestDeleteChatMessages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.PostMessage(ctx, PostMessageCommand{UserID: "u1", Text: "m", SenderID: "s1", ChatID: "c1"})
		require.NoError(t, err)
	}

	deleted, err := svc.DeleteChatMessages(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 5, deleted)

	messages, err := svc.GetChatMessages(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	// deleting again succeeds with zero deletions
	deleted, err = svc.DeleteChatMessages(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestDeleteChatMessagesValidation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.PostMessage(ctx, PostMessageCommand{UserID: "u1", Text: "m", SenderID: "s1", ChatID: "c1"})
	require.NoError(t, err)

	_, err = svc.DeleteChatMessages(ctx, "", "c1")
	assert.Equal(t, chat_errors.CodeInvalidArgument, chat_errors.CodeOf(err))
	_, err = svc.DeleteChatMessages(ctx, "u1", "")
	assert.Equal(t, chat_errors.CodeInvalidArgument, chat_errors.CodeOf(err))
	assert.Equal(t, 1, store.Len(), "validation failure must not touch the store")
}

// failingStore rejects every store call.
type failingStore struct {
	docstore.MemoryStore
}

func (s *failingStore) AddDocument(context.Context, string, map[string]any) (docstore.Document, error) {
	return docstore.Document{}, errors.New("store unavailable")
}

func (s *failingStore) QueryCollection(context.Context, string) ([]docstore.Document, error) {
	return nil, errors.New("store unavailable")
}

func TestStoreFailuresSurfaceAsUnknown(t *testing.T) {
	svc := NewMessageService(&failingStore{}, logger.New(logger.DevelopmentMode))
	ctx := context.Background()

	_, err := svc.PostMessage(ctx, PostMessageCommand{UserID: "u1", Text: "hi", SenderID: "s1"})
	require.Error(t, err)
	assert.Equal(t, chat_errors.CodeUnknown, chat_errors.CodeOf(err))
	assert.Contains(t, err.Error(), "store unavailable")

	_, err = svc.GetChatMessages(ctx, "u1", "c1")
	assert.Equal(t, chat_errors.CodeUnknown, chat_errors.CodeOf(err))

	_, err = svc.DeleteChatMessages(ctx, "u1", "c1")
	assert.Equal(t, chat_errors.CodeUnknown, chat_errors.CodeOf(err))
}
