package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

var jwtSecret []byte

// SetJWTSecret installs the key used to sign and verify session tokens.
// main wires it from the loaded config before any route is served.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// SigningKey returns the installed session token key.
func SigningKey() []byte {
	return jwtSecret
}

// ValidateToken checks the Authorization bearer token and stores the caller's
// username and role in the request context.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing", "status": http.StatusUnauthorized})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return SigningKey(), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "status": http.StatusUnauthorized})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims", "status": http.StatusUnauthorized})
		c.Abort()
		return
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims", "status": http.StatusUnauthorized})
		c.Abort()
		return
	}

	c.Set("username", username)
	c.Set("role", models.Role(role))
	c.Next()
}

// RequireRole gates a route group to the given roles. Runs after
// ValidateToken.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "status": http.StatusUnauthorized})
			c.Abort()
			return
		}
		role := roleVal.(models.Role)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient role", "status": http.StatusUnauthorized})
		c.Abort()
	}
}

// Username returns the authenticated caller's username from the context.
func Username(c *gin.Context) string {
	v, _ := c.Get("username")
	username, _ := v.(string)
	return username
}

// CallerRole returns the authenticated caller's role from the context.
func CallerRole(c *gin.Context) models.Role {
	v, _ := c.Get("role")
	role, _ := v.(models.Role)
	return role
}
