package catalog

import (
	"github.com/nuriddinovv/furniAsia/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/items")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", handler.List)
		items.GET("/:itemCode", handler.Detail)
	}
}
