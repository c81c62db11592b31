package daos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// AddReview stores a user's review of a model, stamped with today's date.
// At most one review per (user, model) pair; a second attempt is a conflict.
func AddReview(db *gorm.DB, model, username string, score int, comment string) (*models.Review, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidInput)
	}
	if comment == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", ErrInvalidInput)
	}

	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetProductByModel(tx, model); err != nil {
			return err
		}

		var existing models.Review
		err := tx.Where("model = ? AND username = ?", model, username).First(&existing).Error
		if err == nil {
			return fmt.Errorf("%w: %s on %s", ErrReviewAlreadyExists, username, model)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing review: %w", err)
		}

		review = models.Review{
			Model:    model,
			Username: username,
			Score:    score,
			Date:     Today(),
			Comment:  comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetProductReviews returns all reviews of a model, requiring it to exist.
func GetProductReviews(db *gorm.DB, model string) ([]models.Review, error) {
	if _, err := GetProductByModel(db, model); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := db.Where("model = ?", model).Order("date ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews for %s: %w", model, err)
	}
	return reviews, nil
}

// DeleteReview removes one user's review of a model.
func DeleteReview(db *gorm.DB, model, username string) error {
	if _, err := GetProductByModel(db, model); err != nil {
		return err
	}

	result := db.Where("model = ? AND username = ?", model, username).Delete(&models.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s on %s", ErrReviewNotFound, username, model)
	}
	return nil
}

// DeleteReviewsOfProduct removes every review of a model.
func DeleteReviewsOfProduct(db *gorm.DB, model string) error {
	if _, err := GetProductByModel(db, model); err != nil {
		return err
	}
	if err := db.Where("model = ?", model).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews for %s: %w", model, err)
	}
	return nil
}

// DeleteAllReviews truncates the review table.
func DeleteAllReviews(db *gorm.DB) error {
	if err := db.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}
