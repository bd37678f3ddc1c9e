package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/quotes", h.Quote)

	group := g.Group("/sessions")
	{
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Delete)
		group.PUT("/:id/date", h.SelectDate)
		group.PUT("/:id/slot", h.SelectSlot)
		group.PUT("/:id/quantity", h.SetQuantity)
		group.POST("/:id/promo", h.ApplyPromo)
		group.DELETE("/:id/promo", h.RemovePromo)
		group.POST("/:id/checkout", h.Checkout)
		group.GET("/:id/result", h.Result)
	}
}
