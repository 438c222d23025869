package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retreatly/internal/models/request_models"
	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type ChatController struct {
	conversationService services.ConversationService
}

func NewChatController(conversationService services.ConversationService) *ChatController {
	return &ChatController{
		conversationService: conversationService,
	}
}

func (ch *ChatController) StartSession(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := ch.conversationService.StartSession(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Conversation started")
}

// SendMessage runs one turn. If a turn is already in flight the current
// session state comes back unchanged.
func (ch *ChatController) SendMessage(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, err := ch.conversationService.SendMessage(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Message processed")
}

func (ch *ChatController) GetSession(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	sessionId := c.Param("id")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, err := ch.conversationService.GetSession(c.Request.Context(), userId, sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session fetched")
}

func (ch *ChatController) ResetSession(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	sessionId := c.Param("id")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, err := ch.conversationService.ResetSession(c.Request.Context(), userId, sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Conversation reset")
}
