package middleware

import (
	"context"
	"net/http"
	"strings"

	"hireme/internal/pkg/jwt"
	"hireme/internal/pkg/logger"
	"hireme/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth rejects requests without a valid bearer token and stores the
// caller id under "user_id".
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil || claims.UserID <= 0 {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets the request through anonymously otherwise.
func OptionalAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := jwtService.ValidateToken(token); err == nil && claims.UserID > 0 {
				setCaller(c, claims)
			}
		}
		c.Next()
	}
}

func setCaller(c *gin.Context, claims *jwt.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("anonymous", claims.Anonymous)
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID)
	c.Request = c.Request.WithContext(ctx)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
