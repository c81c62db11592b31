package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/database"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

// Without a redis client the cache must behave exactly like the DAO.
func TestProductCachePassThrough(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	product := &models.Product{
		Model:             "m1",
		Category:          models.CategoryLaptop,
		SellingPrice:      100,
		AvailableQuantity: 2,
	}
	if err := daos.RegisterProduct(db, product); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}

	pc := NewProductCache(db, nil)
	ctx := context.Background()

	got, err := pc.GetByModel(ctx, "m1")
	if err != nil {
		t.Fatalf("GetByModel failed: %v", err)
	}
	if got.Model != "m1" || got.SellingPrice != 100 {
		t.Errorf("unexpected product: %+v", got)
	}

	if _, err := pc.GetByModel(ctx, "ghost"); !errors.Is(err, daos.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	// No-ops without redis.
	pc.Invalidate(ctx, "m1")
	pc.InvalidateAll(ctx)
}
