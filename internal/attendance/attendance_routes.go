package attendance

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			middleware.RBACFlag(rbacService, "attendance", "read_all", ReadAllKey),
			h.GetAll,
		)
		attendance.GET("/today",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetToday,
		)
		attendance.GET("/summary",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			middleware.RBACFlag(rbacService, "attendance", "read_all", ReadAllKey),
			h.Summary,
		)
		attendance.POST("/clock-in",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			middleware.Idempotency(rdb),
			h.ClockIn,
		)
		attendance.POST("/clock-out",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			middleware.Idempotency(rdb),
			h.ClockOut,
		)
		attendance.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "update"),
			h.Correct,
		)
	}
}
