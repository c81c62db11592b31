package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	productcontroller "github.com/MicheleCazzola/ezelectronics-sub001/controllers/product"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// SetupProductRoutes registers "/products/*". Catalog management is for
// Managers and Admins; the available listing is open to any logged-in user.
func SetupProductRoutes(base *gin.RouterGroup, db *gorm.DB, pc *cache.ProductCache) {
	products := base.Group("/products", middleware.ValidateToken)
	{
		products.GET("/available", productcontroller.GetAvailableProducts(db))

		managed := products.Group("", middleware.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			managed.POST("", productcontroller.CreateProduct(db, pc))
			managed.GET("", productcontroller.GetProducts(db))
			managed.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			managed.PATCH("/:model", productcontroller.RestockProduct(db, pc))
			managed.PATCH("/:model/sell", productcontroller.SellProduct(db, pc))
			managed.DELETE("/:model", productcontroller.DeleteProduct(db, pc))
			managed.DELETE("", productcontroller.DeleteAllProducts(db, pc))
		}
	}
}
