package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextUserName  = "userName"
	ContextUserEmail = "userEmail"
)

const (
	RoleCustomer   = "customer"
	RoleSalonOwner = "salonOwner"
	RoleAdmin      = "admin"
)

// Actor is the authenticated caller as read from the token.
type Actor struct {
	ID    string
	Role  string
	Name  string
	Email string
}

// AuthMiddleware verifies an HS256 bearer token. A missing token is 401,
// an invalid or expired one is 403.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "missing_token", "Access token required.")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			httperr.ForbiddenStatus(c, "invalid_token", "Invalid or expired token.")
			return
		}

		userID := firstClaim(claims, "sub", "userId", "uid")
		if userID == "" {
			httperr.ForbiddenStatus(c, "invalid_token", "Invalid or expired token.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, firstClaim(claims, "role"))
		c.Set(ContextUserName, firstClaim(claims, "name", "displayName"))
		c.Set(ContextUserEmail, firstClaim(claims, "email"))

		c.Next()
	}
}

// RequireRole admits callers whose token role is one of roles. Admins pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role == RoleAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		httperr.ForbiddenStatus(c, "forbidden_role", "Insufficient role for this operation.")
	}
}

func ActorFrom(c *gin.Context) Actor {
	return Actor{
		ID:    c.GetString(ContextUserID),
		Role:  c.GetString(ContextUserRole),
		Name:  c.GetString(ContextUserName),
		Email: c.GetString(ContextUserEmail),
	}
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
