package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/cache"
	cartcontroller "github.com/MicheleCazzola/ezelectronics-sub001/controllers/cart"
)

// SetupRoutes is the single entry point that wires up every route group
// under the /ezelectronics prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, pc *cache.ProductCache) *cartcontroller.EventHub {
	base := r.Group("/ezelectronics")

	SetupUserRoutes(base, db)
	SetupSessionRoutes(base, db)
	SetupProductRoutes(base, db, pc)
	SetupReviewRoutes(base, db)
	return SetupCartRoutes(base, db, pc)
}
