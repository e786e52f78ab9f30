package cart

import (
	"github.com/nuriddinovv/furniAsia/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)
		carts.PUT("/location", handler.SetDeliveryLocation)

		items := carts.Group("/items/:itemCode")
		{
			items.POST("", handler.AddItem)
			items.PATCH("", handler.SetQuantity)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.RemoveItem)
		}
	}
}
