package auth

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(1, 10), handler.Refresh)
		auth.POST("/logout", handler.Logout)

		secured := auth.Group("")
		secured.Use(middleware.AuthMiddleware())
		secured.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		secured.POST("/change-password", middleware.RateLimitByUser(0.2, 2), handler.ChangePassword)
		secured.POST("/2fa/setup", middleware.RateLimitByUser(0.2, 2), handler.SetupTOTP)
		secured.POST("/2fa/enable", middleware.RateLimitByUser(0.5, 3), handler.EnableTOTP)
		secured.POST("/2fa/disable", middleware.RateLimitByUser(0.5, 3), handler.DisableTOTP)
	}
}
