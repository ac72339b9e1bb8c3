package sop

import (
	"github.com/syrene4545/attendance-tracker-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	canManage := middleware.RBACFlag(rbacService, "sop", "manage", ManageKey)

	sops := r.Group("/sops")
	sops.Use(middleware.AuthMiddleware())
	sops.Use(middleware.ContextLogger(logger))
	{
		sops.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sop", "read"),
			canManage,
			h.GetAll,
		)
		sops.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sop", "read"),
			canManage,
			h.GetByID,
		)
		sops.GET("/:id/content",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "sop", "read"),
			h.GetPublished,
		)
		sops.POST("/:id/acknowledge",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sop", "read"),
			h.Acknowledge,
		)
		sops.GET("/:id/acknowledgements",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "sop", "manage"),
			h.Acknowledgements,
		)
		sops.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sop", "manage"),
			h.Create,
		)
		sops.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sop", "manage"),
			h.Update,
		)
		sops.POST("/:id/publish",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sop", "manage"),
			h.Publish,
		)
		sops.POST("/:id/archive",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "sop", "manage"),
			h.Archive,
		)
	}
}
