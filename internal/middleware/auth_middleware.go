package middleware

import (
	"errors"
	"fmt"
	"strings"

	autherrors "gtb-hrms/internal/auth/errors"
	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/shared/contextutil"
	"gtb-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware validates the session token issued by role selection and
// exposes employee_id and role to the rest of the chain.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound.Code, autherrors.ErrTokenNotFound.Message, autherrors.ErrTokenNotFound.HTTPStatus)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortWith(c, errObj.Code, errObj.Message, errObj.HTTPStatus)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, autherrors.ErrInvalidToken.Code, "Invalid token claims", autherrors.ErrInvalidToken.HTTPStatus)
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			abortWith(c, autherrors.ErrInvalidToken.Code, "Employee ID not found in token", autherrors.ErrInvalidToken.HTTPStatus)
			return
		}

		rawRole, _ := claims["role"].(string)
		role, err := domain.ParseRole(rawRole)
		if err != nil {
			abortWith(c, autherrors.ErrInvalidToken.Code, "Role not found in token", autherrors.ErrInvalidToken.HTTPStatus)
			return
		}

		c.Set("employee_id", employeeID)
		c.Set("role", string(role))

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, employeeID)
		ctx = contextutil.WithRole(ctx, string(role))
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("employee_id", employeeID),
			zap.String("role", string(role)),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, code, message string, status int) {
	response.Abort(c, status, code, message, nil)
}
