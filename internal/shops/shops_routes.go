package shops

import (
	"github.com/nuriddinovv/furniAsia/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	shops := r.Group("/shops")
	shops.Use(middleware.AuthMiddleware())
	{
		shops.GET("", handler.List)
	}
}
