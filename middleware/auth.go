package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"car-dealership-api/models"
)

const authUserKey = "authUser"

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthUser is the authenticated identity attached to the request context
// by Protect.
type AuthUser struct {
	ID    uint
	Email string
	Role  models.Role
}

// GenerateToken creates a signed JWT carrying the user id.
func GenerateToken(userID uint, secret string, expiry time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Protect validates the bearer token and re-reads the user so revoked
// accounts stop working immediately. Only id/email/role are selected.
func Protect(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header required (Bearer <token>)",
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		var user models.User
		if err := db.Select("id", "email", "role").First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "The user belonging to this token no longer exists",
			})
			return
		}

		c.Set(authUserKey, AuthUser{ID: user.ID, Email: user.Email, Role: user.Role})
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed roles.
// Composes after Protect.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if ok {
			for _, r := range roles {
				if user.Role == r {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}
}

// CurrentUser extracts the identity Protect attached to the context.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	val, exists := c.Get(authUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := val.(AuthUser)
	return user, ok
}
