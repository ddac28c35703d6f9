package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"syana-server/models"
	"syana-server/types"
)

// Claims represents the JWT claims (using shared types)
type Claims = types.Claims

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// Authenticate resolves the bearer token on the request to a user record.
// It is used both by AuthMiddleware and by the method dispatcher, which runs
// the check before any handler logic.
func Authenticate(db *gorm.DB, secret string, c *gin.Context) (*models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, types.Unauthorized("ERR_AUTH_HEADER_REQUIRED")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, types.Unauthorized("ERR_AUTH_TOKEN_FORMAT")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, types.Unauthorized("ERR_AUTH_TOKEN_INVALID")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, types.Unauthorized("ERR_AUTH_TOKEN_INVALID")
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, types.Unauthorized("ERR_AUTH_USER_NOT_FOUND")
	}

	return &user, nil
}

// AuthMiddleware validates JWT tokens and sets user context.
func AuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := Authenticate(db, secret, c)
		if err != nil {
			appErr, _ := types.AsAppError(err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"statusCode": http.StatusUnauthorized,
				"message":    appErr.Key,
			})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id stored on the context.
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get(ContextUserIDKey)
	s, _ := id.(string)
	return s
}
