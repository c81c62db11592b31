package models

import "time"

type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryAppliance  Category = "Appliance"
)

// ParseCategory maps a request string to a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategorySmartphone, CategoryLaptop, CategoryAppliance:
		return Category(s), true
	default:
		return "", false
	}
}

// Product is the catalog descriptor for a model, not a specific unit sold.
type Product struct {
	Model             string   `gorm:"primaryKey" json:"model"`
	Category          Category `gorm:"type:VARCHAR(20);not null" json:"category"`
	SellingPrice      float64  `gorm:"not null" json:"sellingPrice"`
	ArrivalDate       string   `gorm:"not null" json:"arrivalDate"` // YYYY-MM-DD
	AvailableQuantity int      `json:"quantity"`
	Details           string   `json:"details"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`
}
