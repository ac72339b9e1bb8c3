package middleware

import (
	"net/http"

	"github.com/syrene4545/attendance-tracker-sub001/internal/domain"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func enforceFromContext(c *gin.Context, service RBACService, resource, action string) (bool, bool, error) {
	employeeID := c.GetString("employee_id")
	companyID := c.GetString("company_id")
	if employeeID == "" || companyID == "" {
		return false, false, nil
	}

	allowed, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Resource:   resource,
		Action:     action,
	})
	return allowed, true, err
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, hasContext, err := enforceFromContext(c, service, resource, action)
		if !hasContext {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context")
			return
		}
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Abort(c, http.StatusInternalServerError, apperror.CodeInternalError, "authorization check failed")
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RBACFlag stores whether the caller holds resource:action under key and never aborts.
// Handlers use it to widen a query, e.g. from "my records" to "all records".
func RBACFlag(service RBACService, resource, action, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, _, err := enforceFromContext(c, service, resource, action)
		if err != nil {
			zap.L().Named("middleware.rbac").Warn("flag enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			allowed = false
		}
		c.Set(key, allowed)
		c.Next()
	}
}
