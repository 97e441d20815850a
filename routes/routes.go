package routes

import (
	"time"

	"sapdoc/config"
	"sapdoc/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires CORS and every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Conversation-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterSchedulingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterAgentRoutes(r, hb)
}

// RegisterAssistantRoutes registers the conversational query endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/query", hb.Assistant.HandleQuery)
	}
}

// RegisterAgentRoutes registers the pass-through bridge to the external
// agent runtime.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Any("/agent/*path", hb.AgentProxy)
}
