package routes

import (
	"sapdoc/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes registers all endpoints for the scheduling engine.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.GET("/slots", hb.Scheduling.GetAvailableSlotsHandler)
		api.GET("/slots/nearest", hb.Scheduling.FindNearestSlotHandler)
		api.POST("/book", hb.Scheduling.BookSlotHandler)
		api.POST("/book/natural", hb.Scheduling.BookSlotNaturalHandler)
		api.POST("/book/smart", hb.Scheduling.BookSlotSmartHandler)
		api.POST("/cancel", hb.Scheduling.CancelSlotHandler)
		api.GET("/appointments", hb.Scheduling.ListAppointmentsHandler)
		api.GET("/office-info", hb.Scheduling.OfficeInfoHandler)
	}
}
