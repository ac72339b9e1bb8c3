package middleware

import (
	"errors"
	"os"
	"strings"

	autherrors "github.com/syrene4545/attendance-tracker-sub001/internal/auth/errors"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/apperror"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/response"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookie = "access_token"

// AuthMiddleware validates the access token from the Authorization header or the
// access_token cookie and stores its identity claims on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := token.Parse(os.Getenv("JWT_SECRET"), tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		if claims.Type != token.Access {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		if claims.UserID == "" || claims.CompanyID == "" || claims.EmployeeID == "" {
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
