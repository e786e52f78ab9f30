package profile

import (
	"github.com/nuriddinovv/furniAsia/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handler.Get)
		profile.GET("/qr", handler.QR)
		profile.GET("/history", handler.History)
		profile.POST("/feedback", handler.SendFeedback)
	}
}
