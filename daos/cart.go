package daos

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

func recomputeTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

func findUnpaidCart(db *gorm.DB, username string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").
		Where("username = ? AND paid = ?", username, false).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no unpaid cart for %s", ErrCartNotFound, username)
		}
		return nil, fmt.Errorf("failed to fetch cart for %s: %w", username, err)
	}
	return &cart, nil
}

// GetCurrentCart returns the user's unpaid cart with a recomputed total. A
// missing cart is not an error here: callers get an empty representation and
// decide for themselves whether empty means not-found.
func GetCurrentCart(db *gorm.DB, username string) (*models.Cart, error) {
	cart, err := findUnpaidCart(db, username)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return &models.Cart{Username: username, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	cart.Total = recomputeTotal(cart.Items)
	return cart, nil
}

// CurrentCartID returns the id of the user's unpaid cart, or ErrCartNotFound.
func CurrentCartID(db *gorm.DB, username string) (uint, error) {
	cart, err := findUnpaidCart(db, username)
	if err != nil {
		return 0, err
	}
	return cart.CartID, nil
}

// CreateCart inserts a new unpaid cart for the user. At most one unpaid cart
// per user may exist; a second create is a conflict.
func CreateCart(db *gorm.DB, username string) (*models.Cart, error) {
	if _, err := findUnpaidCart(db, username); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrCartAlreadyExists, username)
	} else if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	cart := models.Cart{Username: username}
	if err := db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for %s: %w", username, err)
	}
	return &cart, nil
}

// AddProductToCart adds a line to the cart, incrementing the quantity when a
// line for the same model already exists. Stock availability is the caller's
// concern, not this function's.
func AddProductToCart(db *gorm.DB, cartID uint, item models.CartItem) error {
	var existing models.CartItem
	err := db.Where("cart_id = ? AND model = ?", cartID, item.Model).First(&existing).Error
	if err == nil {
		existing.Quantity += item.Quantity
		existing.AddedAt = time.Now()
		if err := db.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update cart line %s: %w", item.Model, err)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to fetch cart line %s: %w", item.Model, err)
	}

	item.CartID = cartID
	item.AddedAt = time.Now()
	if err := db.Create(&item).Error; err != nil {
		return fmt.Errorf("failed to insert cart line %s: %w", item.Model, err)
	}
	return nil
}

// AddToCart puts one unit of a model into the user's current cart, creating
// the cart when there is none. The line snapshots the descriptor's category
// and price at add time. Models with no stock are rejected.
func AddToCart(db *gorm.DB, username, model string) (*models.Cart, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		product, err := GetProductByModel(tx, model)
		if err != nil {
			return err
		}
		if product.AvailableQuantity < 1 {
			return fmt.Errorf("%w: %s is out of stock", ErrLowProductStock, model)
		}

		cart, err := findUnpaidCart(tx, username)
		if errors.Is(err, ErrCartNotFound) {
			cart, err = CreateCart(tx, username)
		}
		if err != nil {
			return err
		}

		item := models.CartItem{
			Model:    model,
			Category: product.Category,
			Price:    product.SellingPrice,
			Quantity: 1,
		}
		if err := AddProductToCart(tx, cart.CartID, item); err != nil {
			return err
		}
		return refreshTotal(tx, cart.CartID)
	})
	if err != nil {
		return nil, err
	}
	return GetCurrentCart(db, username)
}

func refreshTotal(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return fmt.Errorf("failed to fetch cart lines: %w", err)
	}
	if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cartID).
		Update("total", recomputeTotal(items)).Error; err != nil {
		return fmt.Errorf("failed to store cart total: %w", err)
	}
	return nil
}

// UpdateCart stores the cart's full line set by deleting every existing line
// and reinserting from cart.Items, then writes the recomputed total. Not
// incremental, which is fine at cart scale; the whole rewrite runs in one
// transaction. Resolves or creates the unpaid cart row for cart.Username.
func UpdateCart(db *gorm.DB, cart *models.Cart) error {
	return db.Transaction(func(tx *gorm.DB) error {
		stored, err := findUnpaidCart(tx, cart.Username)
		if errors.Is(err, ErrCartNotFound) {
			stored, err = CreateCart(tx, cart.Username)
		}
		if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", stored.CartID).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart lines: %w", err)
		}

		for i := range cart.Items {
			item := cart.Items[i]
			item.ID = 0
			item.CartID = stored.CartID
			if item.AddedAt.IsZero() {
				item.AddedAt = time.Now()
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to insert cart line %s: %w", item.Model, err)
			}
		}

		cart.CartID = stored.CartID
		cart.Total = recomputeTotal(cart.Items)
		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", stored.CartID).
			Update("total", cart.Total).Error; err != nil {
			return fmt.Errorf("failed to store cart total: %w", err)
		}
		return nil
	})
}

// CheckoutCart marks the user's unpaid cart as paid, stamping today's date
// and a payment reference. Every line's stock is verified and decremented
// inside the same transaction; any shortfall aborts the whole checkout.
func CheckoutCart(db *gorm.DB, username string) (*models.Cart, error) {
	var out *models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := findUnpaidCart(tx, username)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return fmt.Errorf("%w: cart %d", ErrEmptyCart, cart.CartID)
		}

		for _, item := range cart.Items {
			var product models.Product
			if err := tx.First(&product, "model = ?", item.Model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, item.Model)
				}
				return fmt.Errorf("failed to fetch product %s: %w", item.Model, err)
			}
			if product.AvailableQuantity < item.Quantity {
				return fmt.Errorf("%w: %s has %d units, cart holds %d",
					ErrLowProductStock, item.Model, product.AvailableQuantity, item.Quantity)
			}
			product.AvailableQuantity -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fmt.Errorf("failed to decrement stock for %s: %w", item.Model, err)
			}
		}

		cart.Paid = true
		cart.PaymentDate = Today()
		cart.PaymentRef = time.Now().Format("20060102150405") + "-" + uuid.NewString()
		cart.Total = recomputeTotal(cart.Items)
		updates := map[string]interface{}{
			"paid":         cart.Paid,
			"payment_date": cart.PaymentDate,
			"payment_ref":  cart.PaymentRef,
			"total":        cart.Total,
		}
		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark cart paid: %w", err)
		}
		out = cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPaidCarts returns the user's order history.
func GetPaidCarts(db *gorm.DB, username string) ([]models.Cart, error) {
	var carts []models.Cart
	err := db.Preload("Items").
		Where("username = ? AND paid = ?", username, true).
		Order("payment_date ASC").
		Find(&carts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paid carts for %s: %w", username, err)
	}
	return carts, nil
}

// GetAllCarts returns every cart of every user, paid and unpaid.
func GetAllCarts(db *gorm.DB) ([]models.Cart, error) {
	var carts []models.Cart
	if err := db.Preload("Items").Order("cart_id ASC").Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch carts: %w", err)
	}
	return carts, nil
}

// RemoveProductFromCart takes one unit of a model out of the current cart,
// dropping the line when its quantity reaches zero.
func RemoveProductFromCart(db *gorm.DB, username, model string) (*models.Cart, error) {
	cart, err := findUnpaidCart(db, username)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].Model == model {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrProductNotInCart, model)
	}

	if cart.Items[idx].Quantity > 1 {
		cart.Items[idx].Quantity--
	} else {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	if err := UpdateCart(db, cart); err != nil {
		return nil, err
	}
	return GetCurrentCart(db, username)
}

// ClearCart empties the current cart's lines.
func ClearCart(db *gorm.DB, username string) (*models.Cart, error) {
	cart, err := findUnpaidCart(db, username)
	if err != nil {
		return nil, err
	}
	cart.Items = nil
	if err := UpdateCart(db, cart); err != nil {
		return nil, err
	}
	return GetCurrentCart(db, username)
}

// DeleteAllCarts truncates carts and their lines.
func DeleteAllCarts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart lines: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Cart{}).Error; err != nil {
			return fmt.Errorf("failed to delete carts: %w", err)
		}
		return nil
	})
}
