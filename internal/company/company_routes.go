package company

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")

	// pendaftaran tenant baru, belum ada token
	companies.POST("/register",
		middleware.RateLimitByIP(0.05, 3),
		middleware.ContextLogger(logger),
		handler.Register,
	)

	me := companies.Group("/me")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.ContextLogger(logger))
	{
		me.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetMe,
		)
		me.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateMe,
		)
	}
}
