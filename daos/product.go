package daos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// Grouping modes for catalog queries. The mode and its filter value must be
// consistent: grouping by model requires a model and no category, grouping by
// category requires a valid category and no model, no grouping forbids both.
const (
	GroupingNone     = ""
	GroupingModel    = "model"
	GroupingCategory = "category"
)

// RegisterProduct inserts a new descriptor after validating its fields.
func RegisterProduct(db *gorm.DB, p *models.Product) error {
	if p.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if _, ok := models.ParseCategory(string(p.Category)); !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, p.Category)
	}
	if p.SellingPrice <= 0 {
		return fmt.Errorf("%w: selling price must be positive", ErrInvalidInput)
	}
	if p.AvailableQuantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}

	arrival, err := parseDate(p.ArrivalDate)
	if err != nil {
		return err
	}
	if arrival > Today() {
		return fmt.Errorf("%w: arrival date %s is in the future", ErrDateOrder, arrival)
	}
	p.ArrivalDate = arrival

	var existing models.Product
	err = db.First(&existing, "model = ?", p.Model).Error
	if err == nil {
		return fmt.Errorf("%w: %s", ErrProductAlreadyExists, p.Model)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing model: %w", err)
	}

	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to register product: %w", err)
	}
	return nil
}

// GetProductByModel returns one descriptor or ErrProductNotFound.
func GetProductByModel(db *gorm.DB, model string) (*models.Product, error) {
	var p models.Product
	if err := db.First(&p, "model = ?", model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, model)
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", model, err)
	}
	return &p, nil
}

// RestockProduct increases the available quantity of a model. The change date
// must fall between the arrival date and today; empty defaults to today.
// Returns the new quantity.
func RestockProduct(db *gorm.DB, model string, quantity int, changeDate string) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: restock quantity must be positive", ErrInvalidInput)
	}
	date, err := parseDate(changeDate)
	if err != nil {
		return 0, err
	}

	// SQLite has no row locks; the transaction plus the single-writer
	// database serialize the read-check-write.
	var newQuantity int
	err = db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, model)
			}
			return fmt.Errorf("failed to fetch product %s: %w", model, err)
		}

		if err := checkDateWindow(date, p.ArrivalDate); err != nil {
			return err
		}

		p.AvailableQuantity += quantity
		if err := tx.Save(&p).Error; err != nil {
			return fmt.Errorf("failed to restock %s: %w", model, err)
		}
		newQuantity = p.AvailableQuantity
		return nil
	})
	return newQuantity, err
}

// SellProduct decreases the available quantity of a model. A request beyond
// the current stock is rejected with ErrLowProductStock and leaves the row
// unchanged. Returns the new quantity.
func SellProduct(db *gorm.DB, model string, quantity int, sellingDate string) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: sell quantity must be positive", ErrInvalidInput)
	}
	date, err := parseDate(sellingDate)
	if err != nil {
		return 0, err
	}

	var newQuantity int
	err = db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, model)
			}
			return fmt.Errorf("failed to fetch product %s: %w", model, err)
		}

		if err := checkDateWindow(date, p.ArrivalDate); err != nil {
			return err
		}
		if p.AvailableQuantity < quantity {
			return fmt.Errorf("%w: %s has %d units, requested %d",
				ErrLowProductStock, model, p.AvailableQuantity, quantity)
		}

		p.AvailableQuantity -= quantity
		if err := tx.Save(&p).Error; err != nil {
			return fmt.Errorf("failed to sell %s: %w", model, err)
		}
		newQuantity = p.AvailableQuantity
		return nil
	})
	return newQuantity, err
}

func validateGrouping(grouping, category, model string) error {
	switch grouping {
	case GroupingNone:
		if category != "" || model != "" {
			return fmt.Errorf("%w: category and model require a grouping mode", ErrInvalidInput)
		}
	case GroupingCategory:
		if model != "" {
			return fmt.Errorf("%w: grouping by category excludes a model filter", ErrInvalidInput)
		}
		if _, ok := models.ParseCategory(category); !ok {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
		}
	case GroupingModel:
		if category != "" {
			return fmt.Errorf("%w: grouping by model excludes a category filter", ErrInvalidInput)
		}
		if model == "" {
			return fmt.Errorf("%w: grouping by model requires a model", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown grouping %q", ErrInvalidInput, grouping)
	}
	return nil
}

// GetProducts returns descriptors filtered by the requested grouping mode.
// Grouping by an unknown model is a not-found, not an empty list.
func GetProducts(db *gorm.DB, grouping, category, model string) ([]models.Product, error) {
	return queryProducts(db, grouping, category, model, false)
}

// GetAvailableProducts is GetProducts restricted to quantity > 0.
func GetAvailableProducts(db *gorm.DB, grouping, category, model string) ([]models.Product, error) {
	return queryProducts(db, grouping, category, model, true)
}

func queryProducts(db *gorm.DB, grouping, category, model string, onlyAvailable bool) ([]models.Product, error) {
	if err := validateGrouping(grouping, category, model); err != nil {
		return nil, err
	}
	if grouping == GroupingModel {
		if _, err := GetProductByModel(db, model); err != nil {
			return nil, err
		}
	}

	query := db.Model(&models.Product{})
	switch grouping {
	case GroupingCategory:
		query = query.Where("category = ?", category)
	case GroupingModel:
		query = query.Where("model = ?", model)
	}
	if onlyAvailable {
		query = query.Where("available_quantity > 0")
	}

	var products []models.Product
	if err := query.Order("model ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// DeleteProduct removes one descriptor or fails with ErrProductNotFound.
func DeleteProduct(db *gorm.DB, model string) error {
	result := db.Where("model = ?", model).Delete(&models.Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", model, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrProductNotFound, model)
	}
	return nil
}

// DeleteAllProducts empties the catalog.
func DeleteAllProducts(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}
	return nil
}
