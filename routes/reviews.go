package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewcontroller "github.com/MicheleCazzola/ezelectronics-sub001/controllers/review"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// SetupReviewRoutes registers "/reviews/*". Writing a review is a Customer
// action; bulk deletes belong to Managers and Admins.
func SetupReviewRoutes(base *gin.RouterGroup, db *gorm.DB) {
	reviews := base.Group("/reviews", middleware.ValidateToken)
	{
		reviews.GET("/:model", reviewcontroller.GetReviews(db))
		reviews.POST("/:model", middleware.RequireRole(models.RoleCustomer), reviewcontroller.AddReview(db))
		reviews.DELETE("/:model", middleware.RequireRole(models.RoleCustomer), reviewcontroller.DeleteReview(db))
		reviews.DELETE("/:model/all", middleware.RequireRole(models.RoleManager, models.RoleAdmin), reviewcontroller.DeleteProductReviews(db))
		reviews.DELETE("", middleware.RequireRole(models.RoleManager, models.RoleAdmin), reviewcontroller.DeleteAllReviews(db))
	}
}
