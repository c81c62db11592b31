package daos

import (
	"errors"
	"testing"

	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

func TestRegisterProductDuplicateModel(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "iPhone13", 10, 800)

	p := &models.Product{
		Model:             "iPhone13",
		Category:          models.CategoryLaptop,
		SellingPrice:      1,
		ArrivalDate:       "2024-01-01",
		AvailableQuantity: 1,
	}
	if err := RegisterProduct(db, p); !errors.Is(err, ErrProductAlreadyExists) {
		t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
	}
}

func TestRegisterProductValidation(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name string
		p    models.Product
		want error
	}{
		{"missing model", models.Product{Category: models.CategoryLaptop, SellingPrice: 10, AvailableQuantity: 1}, ErrInvalidInput},
		{"unknown category", models.Product{Model: "m1", Category: "Fridge", SellingPrice: 10, AvailableQuantity: 1}, ErrInvalidInput},
		{"zero price", models.Product{Model: "m1", Category: models.CategoryLaptop, SellingPrice: 0, AvailableQuantity: 1}, ErrInvalidInput},
		{"negative quantity", models.Product{Model: "m1", Category: models.CategoryLaptop, SellingPrice: 10, AvailableQuantity: -1}, ErrInvalidInput},
		{"malformed arrival", models.Product{Model: "m1", Category: models.CategoryLaptop, SellingPrice: 10, AvailableQuantity: 1, ArrivalDate: "03/02/2024"}, ErrInvalidInput},
		{"future arrival", models.Product{Model: "m1", Category: models.CategoryLaptop, SellingPrice: 10, AvailableQuantity: 1, ArrivalDate: "2100-01-01"}, ErrDateOrder},
	}
	for _, tc := range cases {
		p := tc.p
		if err := RegisterProduct(db, &p); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegisterProductDefaultsArrivalToToday(t *testing.T) {
	db := newTestDB(t)
	p := &models.Product{
		Model:             "m1",
		Category:          models.CategoryAppliance,
		SellingPrice:      50,
		AvailableQuantity: 3,
	}
	if err := RegisterProduct(db, p); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}
	if p.ArrivalDate != Today() {
		t.Errorf("expected arrival date %s, got %s", Today(), p.ArrivalDate)
	}
}

func TestSellInsufficientStockLeavesQuantityUnchanged(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 5, 100)

	if _, err := SellProduct(db, "m1", 10, ""); !errors.Is(err, ErrLowProductStock) {
		t.Fatalf("expected ErrLowProductStock, got %v", err)
	}

	p, err := GetProductByModel(db, "m1")
	if err != nil {
		t.Fatalf("GetProductByModel failed: %v", err)
	}
	if p.AvailableQuantity != 5 {
		t.Errorf("expected quantity 5 after rejected sale, got %d", p.AvailableQuantity)
	}
}

func TestRestockSellRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 10, 100)

	q, err := RestockProduct(db, "m1", 5, "")
	if err != nil {
		t.Fatalf("RestockProduct failed: %v", err)
	}
	if q != 15 {
		t.Fatalf("expected quantity 15 after restock, got %d", q)
	}

	q, err = SellProduct(db, "m1", 5, "")
	if err != nil {
		t.Fatalf("SellProduct failed: %v", err)
	}
	if q != 10 {
		t.Errorf("expected quantity back to 10 after round trip, got %d", q)
	}
}

func TestSellToZeroThenConflict(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 10, 100)

	if q, err := SellProduct(db, "m1", 10, ""); err != nil || q != 0 {
		t.Fatalf("expected quantity 0, got %d (err %v)", q, err)
	}
	if _, err := SellProduct(db, "m1", 5, ""); !errors.Is(err, ErrLowProductStock) {
		t.Fatalf("expected ErrLowProductStock on empty stock, got %v", err)
	}
}

func TestQuantityChangeDateRules(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 10, 100) // arrival 2024-02-03

	if _, err := RestockProduct(db, "m1", 10, "2024-02-01"); !errors.Is(err, ErrDateOrder) {
		t.Errorf("restock before arrival: expected ErrDateOrder, got %v", err)
	}
	if _, err := SellProduct(db, "m1", 1, "2024-02-01"); !errors.Is(err, ErrDateOrder) {
		t.Errorf("sale before arrival: expected ErrDateOrder, got %v", err)
	}
	if _, err := RestockProduct(db, "m1", 10, "2100-01-01"); !errors.Is(err, ErrDateOrder) {
		t.Errorf("future restock: expected ErrDateOrder, got %v", err)
	}
	if _, err := SellProduct(db, "m1", 1, "not-a-date"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("malformed date: expected ErrInvalidInput, got %v", err)
	}
	if _, err := RestockProduct(db, "m1", 0, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero restock: expected ErrInvalidInput, got %v", err)
	}

	p, _ := GetProductByModel(db, "m1")
	if p.AvailableQuantity != 10 {
		t.Errorf("rejected changes must not touch quantity, got %d", p.AvailableQuantity)
	}
}

func TestQuantityChangeUnknownModel(t *testing.T) {
	db := newTestDB(t)
	if _, err := RestockProduct(db, "ghost", 1, ""); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := SellProduct(db, "ghost", 1, ""); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGroupingValidation(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 1, 10)

	cases := []struct {
		name                      string
		grouping, category, model string
	}{
		{"no grouping with category", "", "Smartphone", ""},
		{"no grouping with model", "", "", "m1"},
		{"category grouping without category", "category", "", ""},
		{"category grouping with model", "category", "Smartphone", "m1"},
		{"category grouping with bad category", "category", "Fridge", ""},
		{"model grouping without model", "model", "", ""},
		{"model grouping with category", "model", "Smartphone", "m1"},
		{"unknown grouping", "brand", "", ""},
	}
	for _, tc := range cases {
		if _, err := GetProducts(db, tc.grouping, tc.category, tc.model); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}

	if _, err := GetProducts(db, "model", "", "ghost"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("unknown model grouping: expected ErrProductNotFound, got %v", err)
	}
}

func TestGetProductsFiltering(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 3, 10)
	seedProduct(t, db, "m2", 0, 20)
	laptop := &models.Product{
		Model:             "m3",
		Category:          models.CategoryLaptop,
		SellingPrice:      30,
		ArrivalDate:       "2024-02-03",
		AvailableQuantity: 1,
	}
	if err := RegisterProduct(db, laptop); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}

	all, err := GetProducts(db, GroupingNone, "", "")
	if err != nil {
		t.Fatalf("GetProducts failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 products, got %d", len(all))
	}

	available, err := GetAvailableProducts(db, GroupingNone, "", "")
	if err != nil {
		t.Fatalf("GetAvailableProducts failed: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("expected 2 available products, got %d", len(available))
	}
	for _, p := range available {
		if p.AvailableQuantity == 0 {
			t.Errorf("available listing contains out-of-stock model %s", p.Model)
		}
	}

	phones, err := GetProducts(db, GroupingCategory, "Smartphone", "")
	if err != nil {
		t.Fatalf("GetProducts by category failed: %v", err)
	}
	if len(phones) != 2 {
		t.Errorf("expected 2 smartphones, got %d", len(phones))
	}

	byModel, err := GetProducts(db, GroupingModel, "", "m2")
	if err != nil {
		t.Fatalf("GetProducts by model failed: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "m2" {
		t.Errorf("expected exactly m2, got %+v", byModel)
	}
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 1, 10)

	if err := DeleteProduct(db, "m1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if err := DeleteProduct(db, "m1"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestDeleteAllProducts(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "m1", 1, 10)
	seedProduct(t, db, "m2", 1, 10)

	if err := DeleteAllProducts(db); err != nil {
		t.Fatalf("DeleteAllProducts failed: %v", err)
	}
	all, err := GetProducts(db, GroupingNone, "", "")
	if err != nil {
		t.Fatalf("GetProducts failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(all))
	}
}
