package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IssueToken signs a 24h session token carrying the username and role.
func IssueToken(username, role string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.SigningKey())
}

// POST /sessions
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "username and password are required", "status": http.StatusUnprocessableEntity})
			return
		}

		user, err := daos.CheckCredentials(db, input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password", "status": http.StatusUnauthorized})
			return
		}

		token, err := IssueToken(user.Username, string(user.Role))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Token generation failed", "status": http.StatusServiceUnavailable})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// DELETE /sessions/current
//
// Sessions are stateless JWTs, so logout is the client discarding its token;
// the endpoint exists so the surface matches what clients expect.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /sessions/current
func CurrentSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := daos.GetUserByUsername(db, middleware.Username(c))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session user no longer exists", "status": http.StatusUnauthorized})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
