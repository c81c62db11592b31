package reviewcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/controllers/httperr"
	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/middleware"
)

type addReviewInput struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// POST /reviews/:model
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input addReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "score (1-5) and a non-empty comment are required", "status": http.StatusUnprocessableEntity})
			return
		}

		review, err := daos.AddReview(db, c.Param("model"), middleware.Username(c), input.Score, input.Comment)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// GET /reviews/:model
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := daos.GetProductReviews(db, c.Param("model"))
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// DELETE /reviews/:model — delete the caller's own review.
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteReview(db, c.Param("model"), middleware.Username(c)); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}

// DELETE /reviews/:model/all
func DeleteProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteReviewsOfProduct(db, c.Param("model")); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reviews deleted"})
	}
}

// DELETE /reviews
func DeleteAllReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := daos.DeleteAllReviews(db); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All reviews deleted"})
	}
}
