package handler

import (
	"net/http"

	"chat-store/internal/services"
	"chat-store/internal/transport/httpdto"
	chat_errors "chat-store/pkg/errors"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.MessageService
}

func NewChatHandler(service *services.MessageService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Get returns every message of one chat. Ordering is whatever the store
// returned; this layer promises none.
func (h *ChatHandler) Get(c *gin.Context) {
	messages, err := h.service.GetChatMessages(c.Request.Context(), c.Query("userId"), c.Query("chatId"))
	if err != nil {
		code := chat_errors.CodeOf(err)
		c.JSON(statusForCode(code), httpdto.NewErrorResponse(err.Error(), code))
		return
	}

	c.JSON(http.StatusOK, httpdto.GetChatResponse{
		Status:   httpdto.StatusGotChat,
		Messages: messages,
	})
}

// Delete removes the whole message collection of one chat in a single
// batch. Deleting a chat that has no messages still succeeds.
func (h *ChatHandler) Delete(c *gin.Context) {
	_, err := h.service.DeleteChatMessages(c.Request.Context(), c.Query("userId"), c.Query("chatId"))
	if err != nil {
		code := chat_errors.CodeOf(err)
		c.JSON(statusForCode(code), httpdto.NewErrorResponse(err.Error(), code))
		return
	}

	c.JSON(http.StatusOK, httpdto.DeleteChatResponse{
		Status: httpdto.StatusDeletedChat,
	})
}
