package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/auth"
	usercontroller "github.com/MicheleCazzola/ezelectronics-sub001/controllers/user"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// SetupUserRoutes registers "/users/*". Registration is public; everything
// else requires a session.
func SetupUserRoutes(base *gin.RouterGroup, db *gorm.DB) {
	users := base.Group("/users")
	{
		users.POST("", usercontroller.RegisterUser(db))

		protected := users.Group("", middleware.ValidateToken)
		{
			protected.GET("", middleware.RequireRole(models.RoleAdmin), usercontroller.GetAllUsers(db))
			protected.DELETE("", middleware.RequireRole(models.RoleAdmin), usercontroller.DeleteAllUsers(db))
			protected.GET("/:username", usercontroller.GetUser(db))
			protected.PATCH("/:username", usercontroller.UpdateUser(db))
			protected.DELETE("/:username", usercontroller.DeleteUser(db))
		}
	}
}

// SetupSessionRoutes registers "/sessions/*".
func SetupSessionRoutes(base *gin.RouterGroup, db *gorm.DB) {
	sessions := base.Group("/sessions")
	{
		sessions.POST("", auth.Login(db))
		sessions.DELETE("/current", middleware.ValidateToken, auth.Logout())
		sessions.GET("/current", middleware.ValidateToken, auth.CurrentSession(db))
	}
}
