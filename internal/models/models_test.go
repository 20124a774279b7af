package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// TestProductCreation tests basic product creation and validation
func TestProductCreation(t *testing.T) {
	product, err := NewProduct(7, " CLTH-003 ", "  Running   Shoes Ultra ", "Clothing", "129.99")
	if err != nil {
		t.Fatalf("NewProduct failed: %v", err)
	}
	if err := product.Validate(); err != nil {
		t.Errorf("Product validation failed: %v", err)
	}

	if product.Name != "Running Shoes Ultra" {
		t.Errorf("Expected sanitized name, got '%s'", product.Name)
	}
	if product.Slug != "running-shoes-ultra" {
		t.Errorf("Expected slug 'running-shoes-ultra', got '%s'", product.Slug)
	}
	if product.SKU != "CLTH-003" {
		t.Errorf("Expected SKU 'CLTH-003', got '%s'", product.SKU)
	}
	if product.ImageURL != "/images/products/running-shoes-ultra.svg" {
		t.Errorf("Expected image path from slug, got '%s'", product.ImageURL)
	}
	if !product.Price.Equal(decimal.RequireFromString("129.99")) {
		t.Errorf("Expected price 129.99, got %s", product.Price)
	}

	product.SetSlug("running-shoes")
	if product.ImageURL != "/images/products/running-shoes.svg" {
		t.Errorf("Expected image path to follow slug, got '%s'", product.ImageURL)
	}

	if _, err := NewProduct(1, "HOME-001", "Lamp", "Home", "cheap"); err == nil {
		t.Error("Expected error for invalid price")
	}
}

// TestProductValidation tests that invalid products are rejected
func TestProductValidation(t *testing.T) {
	valid := func() *Product {
		p, _ := NewProduct(1, "HOME-001", "Lamp", "Home", "10.00")
		return p
	}

	tests := []struct {
		name   string
		mutate func(p *Product)
		field  string
	}{
		{name: "zero id", mutate: func(p *Product) { p.ID = 0 }, field: "id"},
		{name: "blank name", mutate: func(p *Product) { p.Name = "  " }, field: "name"},
		{name: "blank category", mutate: func(p *Product) { p.Category = "" }, field: "category"},
		{name: "negative price", mutate: func(p *Product) { p.Price = NewPrice(decimal.NewFromInt(-1)) }, field: "price"},
		{name: "negative stock", mutate: func(p *Product) { p.StockQuantity = -3 }, field: "stockQuantity"},
		{name: "missing sku", mutate: func(p *Product) { p.SKU = "" }, field: "sku"},
		{name: "bad slug", mutate: func(p *Product) { p.Slug = "Not A Slug" }, field: "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := p.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, verr.Field)
			}
		})
	}
}

// TestProductJSON verifies prices are encoded as JSON numbers
func TestProductJSON(t *testing.T) {
	product, _ := NewProduct(3, "ELEC-003", "Smart Watch Pro", "Electronics", "399.99")

	data, err := json.Marshal(product)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if price, ok := decoded["price"].(float64); !ok || price != 399.99 {
		t.Errorf("Expected numeric price 399.99, got %v", decoded["price"])
	}
	if _, ok := decoded["imageUrl"]; !ok {
		t.Error("Expected imageUrl key")
	}

	var back Product
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal into Product failed: %v", err)
	}
	if !back.Price.Equal(product.Price.Decimal) {
		t.Errorf("Expected price %s after round trip, got %s", product.Price, back.Price)
	}

	// Only Price drops the quotes; other decimals keep the library default
	raw, err := json.Marshal(decimal.RequireFromString("1.50"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"1.5"` {
		t.Errorf("Expected quoted decimal, got %s", raw)
	}
}

// TestSlugify tests slug derivation
func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Smart Watch Pro":        "smart-watch-pro",
		`Ultra-Slim Laptop 15"`:  "ultra-slim-laptop-15",
		"Home & Kitchen":         "home-kitchen",
		"  --Premium  Cotton-- ": "premium-cotton",
	}

	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
		if !IsValidSlug(Slugify(in)) {
			t.Errorf("Slugify(%q) produced an invalid slug", in)
		}
	}
}

// TestParseSortKey tests sort key parsing
func TestParseSortKey(t *testing.T) {
	for _, value := range []string{"name", "price_asc", "price_desc"} {
		key, err := ParseSortKey(value)
		if err != nil {
			t.Errorf("ParseSortKey(%q) failed: %v", value, err)
		}
		if key.String() != value {
			t.Errorf("Expected %s, got %s", value, key)
		}
		if !key.IsValid() {
			t.Errorf("Expected %s to be valid", key)
		}
	}

	if SortKey("rating").IsValid() {
		t.Error("Expected rating to be invalid")
	}

	for _, value := range []string{"", "rating", "NAME", "price"} {
		if _, err := ParseSortKey(value); !errors.Is(err, ErrInvalidSortKey) {
			t.Errorf("ParseSortKey(%q): expected ErrInvalidSortKey, got %v", value, err)
		}
	}

	if DefaultSortKey != SortName {
		t.Errorf("Expected default sort to be name, got %s", DefaultSortKey)
	}

	keys := SortKeys()
	want := []string{"name", "price_asc", "price_desc"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("SortKeys() = %v, want %v", keys, want)
			break
		}
	}
}

// TestOrderID tests that order identifiers round-trip unchanged
func TestOrderID(t *testing.T) {
	tests := []struct {
		input   string
		wantSet bool
		wantStr string
	}{
		{input: `"ORD-1"`, wantSet: true, wantStr: "ORD-1"},
		{input: `1001`, wantSet: true, wantStr: "1001"},
		{input: `""`, wantSet: false},
		{input: `0`, wantSet: false},
		{input: `0.0`, wantSet: false},
		{input: `null`, wantSet: false},
		{input: `false`, wantSet: false},
		{input: `[]`, wantSet: false},
		{input: `[ ]`, wantSet: false},
		{input: `{}`, wantSet: false},
		{input: `[1]`, wantSet: true, wantStr: "[1]"},
		{input: `{"id":7}`, wantSet: true, wantStr: `{"id":7}`},
	}

	for _, tt := range tests {
		var holder struct {
			OrderID OrderID `json:"orderId"`
		}
		if err := json.Unmarshal([]byte(`{"orderId":`+tt.input+`}`), &holder); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
		}

		if set := len(holder.OrderID) > 0; set != tt.wantSet {
			t.Errorf("OrderID(%s) set = %v, want %v", tt.input, set, tt.wantSet)
			continue
		}
		if !tt.wantSet {
			continue
		}
		if holder.OrderID.String() != tt.wantStr {
			t.Errorf("OrderID(%s).String() = %q, want %q", tt.input, holder.OrderID.String(), tt.wantStr)
		}

		out, err := json.Marshal(holder.OrderID)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != tt.input {
			t.Errorf("Expected %s to be echoed, got %s", tt.input, out)
		}
	}
}
