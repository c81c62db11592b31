package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	cartcontroller "github.com/MicheleCazzola/ezelectronics-sub001/controllers/cart"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// SetupCartRoutes registers "/carts/*" and returns the checkout event hub so
// the caller can hold on to it.
func SetupCartRoutes(base *gin.RouterGroup, db *gorm.DB, pc *cache.ProductCache) *cartcontroller.EventHub {
	hub := cartcontroller.NewEventHub()

	carts := base.Group("/carts", middleware.ValidateToken)
	{
		customer := carts.Group("", middleware.RequireRole(models.RoleCustomer))
		{
			customer.GET("", cartcontroller.GetCurrentCart(db))
			customer.POST("", cartcontroller.AddToCart(db, pc))
			customer.PATCH("", cartcontroller.Checkout(db, hub))
			customer.GET("/history", cartcontroller.GetCartHistory(db))
			customer.DELETE("/products/:model", cartcontroller.RemoveProductFromCart(db))
			customer.DELETE("/current", cartcontroller.ClearCart(db))
		}

		staff := carts.Group("", middleware.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			staff.GET("/all", cartcontroller.GetAllCarts(db))
			staff.DELETE("", cartcontroller.DeleteAllCarts(db))
			staff.GET("/ws", hub.Handler)
		}
	}
	return hub
}
