package middleware

import (
	"errors"
	"strings"

	"sofreh_salawat_backend/internal/config"
	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/repository"
	"sofreh_salawat_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores the claims for
// handlers; no ambient global state, identity always flows through the
// request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c, util.MsgUnauthorized)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			msg := "توکن نامعتبر است"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "توکن منقضی شده است"
			}
			util.Unauthorized(c, msg)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles; it loads the
// user because the token does not carry the role.
func RoleMiddleware(userRepo *repository.UserRepository, roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c, util.MsgUnauthorized)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			util.Unauthorized(c, util.MsgUnauthorized)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			// Admins pass every role gate.
			if user.Role == model.RoleAdmin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c, util.MsgForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
