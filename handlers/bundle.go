package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Scheduling *SchedulingHandler
	Assistant  *AssistantHandler
	// AgentProxy forwards conversational traffic to the external agent runtime.
	AgentProxy gin.HandlerFunc
}
