package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	"github.com/MicheleCazzola/ezelectronics-sub001/controllers/httperr"
	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

type createProductInput struct {
	Model        string  `json:"model" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	SellingPrice float64 `json:"sellingPrice" binding:"required,gt=0"`
	ArrivalDate  string  `json:"arrivalDate"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	Details      string  `json:"details"`
}

type quantityChangeInput struct {
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	ChangeDate string `json:"changeDate"`
}

type sellInput struct {
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	SellingDate string `json:"sellingDate"`
}

// POST /products
func CreateProduct(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error(), "status": http.StatusUnprocessableEntity})
			return
		}

		product := models.Product{
			Model:             input.Model,
			Category:          models.Category(input.Category),
			SellingPrice:      input.SellingPrice,
			ArrivalDate:       input.ArrivalDate,
			AvailableQuantity: input.Quantity,
			Details:           input.Details,
		}
		if err := daos.RegisterProduct(db, &product); err != nil {
			httperr.Abort(c, err)
			return
		}

		pc.Invalidate(c.Request.Context(), product.Model)
		c.JSON(http.StatusOK, product)
	}
}

// PATCH /products/:model
func RestockProduct(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param("model")

		var input quantityChangeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error(), "status": http.StatusUnprocessableEntity})
			return
		}

		newQuantity, err := daos.RestockProduct(db, model, input.Quantity, input.ChangeDate)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		pc.Invalidate(c.Request.Context(), model)
		c.JSON(http.StatusOK, gin.H{"quantity": newQuantity})
	}
}

// PATCH /products/:model/sell
func SellProduct(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param("model")

		var input sellInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid input: " + err.Error(), "status": http.StatusUnprocessableEntity})
			return
		}

		newQuantity, err := daos.SellProduct(db, model, input.Quantity, input.SellingDate)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		pc.Invalidate(c.Request.Context(), model)
		c.JSON(http.StatusOK, gin.H{"quantity": newQuantity})
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := daos.GetProducts(db, c.Query("grouping"), c.Query("category"), c.Query("model"))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/available
func GetAvailableProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := daos.GetAvailableProducts(db, c.Query("grouping"), c.Query("category"), c.Query("model"))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// DELETE /products/:model
func DeleteProduct(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param("model")
		if err := daos.DeleteProduct(db, model); err != nil {
			httperr.Abort(c, err)
			return
		}
		pc.Invalidate(c.Request.Context(), model)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// DELETE /products
func DeleteAllProducts(db *gorm.DB, pc *cache.ProductCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteAllProducts(db); err != nil {
			httperr.Abort(c, err)
			return
		}
		pc.InvalidateAll(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "All products deleted"})
	}
}
