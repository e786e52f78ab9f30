package order

import (
	"github.com/nuriddinovv/furniAsia/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", handler.Checkout)
		orders.GET("", handler.List)
		orders.GET("/:docEntry", handler.Detail)
	}
}
