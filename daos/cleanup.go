package daos

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// Cleanup empties every table, children before parents so foreign keys never
// block a delete. The first failure aborts and names the table it came from.
func Cleanup(db *gorm.DB) error {
	steps := []struct {
		table string
		model interface{}
	}{
		{"cart items", &models.CartItem{}},
		{"carts", &models.Cart{}},
		{"reviews", &models.Review{}},
		{"products", &models.Product{}},
		{"users", &models.User{}},
	}
	for _, step := range steps {
		if err := db.Where("1 = 1").Delete(step.model).Error; err != nil {
			return fmt.Errorf("cleanup failed on %s: %w", step.table, err)
		}
	}
	return nil
}
