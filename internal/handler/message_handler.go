package handler

import (
	"net/http"

	"chat-store/internal/services"
	"chat-store/internal/transport/httpdto"
	chat_errors "chat-store/pkg/errors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Post is the callable-style create operation. Clients get a typed code
// on failure: invalid-argument for missing fields, unknown for store
// failures with the underlying message as detail.
func (h *MessageHandler) Post(c *gin.Context) {
	var req httpdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request body", chat_errors.CodeInvalidArgument))
		return
	}

	result, err := h.service.PostMessage(c.Request.Context(), services.PostMessageCommand{
		UserID:   req.UserID,
		Text:     req.Text,
		SenderID: req.SenderID,
		ChatID:   req.ChatID,
	})
	if err != nil {
		code := chat_errors.CodeOf(err)
		c.JSON(statusForCode(code), httpdto.NewErrorResponse(err.Error(), code))
		return
	}

	c.JSON(http.StatusOK, httpdto.PostMessageResponse{
		Status:    httpdto.StatusNewMessage,
		ChatID:    result.ChatID,
		MessageID: result.MessageID,
	})
}

func statusForCode(code string) int {
	if code == chat_errors.CodeInvalidArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
