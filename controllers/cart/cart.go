package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	"github.com/MicheleCazzola/ezelectronics-sub001/controllers/httperr"
	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
)

type addProductInput struct {
	Model string `json:"model" binding:"required"`
}

// GET /carts
func GetCurrentCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := daos.GetCurrentCart(db, middleware.Username(c))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /carts
func AddToCart(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "model is required", "status": http.StatusUnprocessableEntity})
			return
		}

		// Fast-path existence check through the cache; the DAO re-validates
		// stock inside its transaction either way.
		if _, err := pc.GetByModel(c.Request.Context(), input.Model); err != nil {
			httperr.Abort(c, err)
			return
		}

		cart, err := daos.AddToCart(db, middleware.Username(c), input.Model)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /carts
func Checkout(db *gorm.DB, hub *EventHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := daos.CheckoutCart(db, middleware.Username(c))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		hub.BroadcastCheckout(cart)
		c.JSON(http.StatusOK, cart)
	}
}

// GET /carts/history
func GetCartHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := daos.GetPaidCarts(db, middleware.Username(c))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// DELETE /carts/products/:model
func RemoveProductFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := daos.RemoveProductFromCart(db, middleware.Username(c), c.Param("model"))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts/current
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := daos.ClearCart(db, middleware.Username(c))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /carts/all
func GetAllCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := daos.GetAllCarts(db)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// DELETE /carts
func DeleteAllCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteAllCarts(db); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All carts deleted"})
	}
}
