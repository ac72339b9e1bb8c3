package assessment

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
	canManage := middleware.RBACFlag(rbacService, "assessment", "manage", ManageKey)

	assessments := r.Group("/assessments")
	assessments.Use(middleware.AuthMiddleware())
	assessments.Use(middleware.ContextLogger(logger))
	{
		assessments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "read"),
			canManage,
			h.GetAll,
		)
		assessments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "read"),
			canManage,
			h.GetByID,
		)
		assessments.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.Create,
		)
		assessments.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.Update,
		)
		assessments.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.Delete,
		)
		assessments.POST("/:id/publish",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.Publish,
		)
		assessments.POST("/:id/archive",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.Archive,
		)
		assessments.POST("/:id/questions",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.AddQuestion,
		)
		assessments.DELETE("/:id/questions/:question_id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.DeleteQuestion,
		)
		assessments.GET("/:id/attempts",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "manage"),
			h.ListAttempts,
		)
		assessments.POST("/:id/start",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "assessment", "take"),
			h.Start,
		)

		assessments.GET("/attempts/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "take"),
			h.MyAttempts,
		)
		assessments.GET("/attempts/:attempt_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "read"),
			canManage,
			h.GetAttempt,
		)
		assessments.PUT("/attempts/:attempt_id/answers",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "assessment", "take"),
			h.SaveAnswers,
		)
		assessments.POST("/attempts/:attempt_id/submit",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assessment", "take"),
			h.Submit,
		)

		assessments.GET("/badges/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "read"),
			h.MyBadges,
		)
		assessments.GET("/certifications/me",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assessment", "read"),
			h.MyCertifications,
		)
	}
}
