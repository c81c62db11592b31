package models

import "time"

type Cart struct {
	CartID      uint       `gorm:"primaryKey" json:"-"`
	Username    string     `gorm:"index;not null" json:"customer"`
	Paid        bool       `json:"paid"`
	PaymentDate string     `json:"paymentDate"` // YYYY-MM-DD, empty until checkout
	PaymentRef  string     `json:"paymentRef,omitempty"`
	Total       float64    `json:"total"`
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

// CartItem snapshots category and price at add time, decoupled from later
// descriptor changes.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	CartID   uint      `gorm:"index" json:"-"`
	Model    string    `gorm:"not null" json:"model"`
	Category Category  `gorm:"type:VARCHAR(20)" json:"category"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"-"`
}

// LineTotal is the contribution of this line to the cart total.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
