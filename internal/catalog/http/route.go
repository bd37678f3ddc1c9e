package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers catalog routes. The catalog is public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/experiences")
	{
		group.GET("", h.List)                // Search experiences
		group.GET("/:id", h.Get)             // Experience details
		group.GET("/:id/dates", h.ListDates) // Dates on offer
		group.GET("/:id/slots", h.ListSlots) // Slots on a date
	}
}
