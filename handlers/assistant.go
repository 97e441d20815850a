package handlers

import (
	"net/http"
	"time"

	"sapdoc/services/assistant"
	"sapdoc/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler answers conversational scheduling queries.
type AssistantHandler struct {
	Responder *assistant.Responder
}

func NewAssistantHandler(responder *assistant.Responder) *AssistantHandler {
	return &AssistantHandler{Responder: responder}
}

// ConversationTurn is one message in the running conversation history the
// client echoes back with each query.
type ConversationTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// HandleQuery processes one patient message. POST /api/assistant/query.
func (h *AssistantHandler) HandleQuery(c *gin.Context) {
	var input struct {
		Message             string             `json:"message" binding:"required"`
		ConversationHistory []ConversationTurn `json:"conversation_history"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	response := h.Responder.Respond(c.Request.Context(), input.Message)

	now := time.Now().Format(time.RFC3339)
	history := append(input.ConversationHistory,
		ConversationTurn{Role: "user", Content: input.Message, Timestamp: now},
		ConversationTurn{Role: "assistant", Content: response, Timestamp: now},
	)

	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"response":             response,
		"conversation_history": history,
		"metadata": gin.H{
			"agent": "sapdoc-scheduling-assistant",
			"mode":  "rule_based",
		},
	})
}
