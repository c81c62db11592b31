package daos

import (
	"errors"
	"testing"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

func TestAddReviewStampsToday(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user1", models.RoleCustomer)
	seedProduct(t, db, "m1", 5, 100)

	review, err := AddReview(db, "m1", "user1", 5, "comment")
	if err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if review.Date != Today() {
		t.Errorf("expected review date %s, got %s", Today(), review.Date)
	}

	reviews, err := GetProductReviews(db, "m1")
	if err != nil {
		t.Fatalf("GetProductReviews failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Username != "user1" || reviews[0].Score != 5 {
		t.Errorf("unexpected reviews: %+v", reviews)
	}
}

func TestAddReviewUniquePerUserAndModel(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user1", models.RoleCustomer)
	seedProduct(t, db, "m1", 5, 100)

	if _, err := AddReview(db, "m1", "user1", 5, "comment"); err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	// A different score and comment is still the same (user, model) pair.
	if _, err := AddReview(db, "m1", "user1", 1, "changed my mind"); !errors.Is(err, ErrReviewAlreadyExists) {
		t.Fatalf("expected ErrReviewAlreadyExists, got %v", err)
	}

	// Other users and other models are unaffected.
	seedUser(t, db, "user2", models.RoleCustomer)
	seedProduct(t, db, "m2", 5, 100)
	if _, err := AddReview(db, "m1", "user2", 3, "ok"); err != nil {
		t.Errorf("different user should be allowed: %v", err)
	}
	if _, err := AddReview(db, "m2", "user1", 3, "ok"); err != nil {
		t.Errorf("different model should be allowed: %v", err)
	}
}

func TestAddReviewValidation(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user1", models.RoleCustomer)
	seedProduct(t, db, "m1", 5, 100)

	if _, err := AddReview(db, "m1", "user1", 0, "comment"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("score 0: expected ErrInvalidInput, got %v", err)
	}
	if _, err := AddReview(db, "m1", "user1", 6, "comment"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("score 6: expected ErrInvalidInput, got %v", err)
	}
	if _, err := AddReview(db, "m1", "user1", 3, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty comment: expected ErrInvalidInput, got %v", err)
	}
	if _, err := AddReview(db, "ghost", "user1", 3, "comment"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("unknown model: expected ErrProductNotFound, got %v", err)
	}
}

func TestGetReviewsUnknownModel(t *testing.T) {
	db := newTestDB(t)
	if _, err := GetProductReviews(db, "ghost"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteReviewScopes(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "user1", models.RoleCustomer)
	seedUser(t, db, "user2", models.RoleCustomer)
	seedProduct(t, db, "m1", 5, 100)
	seedProduct(t, db, "m2", 5, 100)

	for _, pair := range []struct{ model, user string }{
		{"m1", "user1"}, {"m1", "user2"}, {"m2", "user1"},
	} {
		if _, err := AddReview(db, pair.model, pair.user, 4, "comment"); err != nil {
			t.Fatalf("AddReview(%s, %s) failed: %v", pair.model, pair.user, err)
		}
	}

	if err := DeleteReview(db, "m1", "user1"); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}
	if err := DeleteReview(db, "m1", "user1"); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("second delete: expected ErrReviewNotFound, got %v", err)
	}
	if err := DeleteReview(db, "ghost", "user1"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("unknown model: expected ErrProductNotFound, got %v", err)
	}

	if err := DeleteReviewsOfProduct(db, "m1"); err != nil {
		t.Fatalf("DeleteReviewsOfProduct failed: %v", err)
	}
	reviews, _ := GetProductReviews(db, "m1")
	if len(reviews) != 0 {
		t.Errorf("expected no reviews left on m1, got %d", len(reviews))
	}
	reviews, _ = GetProductReviews(db, "m2")
	if len(reviews) != 1 {
		t.Errorf("expected m2 reviews untouched, got %d", len(reviews))
	}

	if err := DeleteAllReviews(db); err != nil {
		t.Fatalf("DeleteAllReviews failed: %v", err)
	}
	reviews, _ = GetProductReviews(db, "m2")
	if len(reviews) != 0 {
		t.Errorf("expected all reviews gone, got %d", len(reviews))
	}
}
