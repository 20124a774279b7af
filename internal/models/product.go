package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a monetary amount that is encoded as a JSON number
type Price struct {
	decimal.Decimal
}

// NewPrice wraps a decimal amount
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// PriceFromString parses a decimal string such as "299.99"
func PriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(d), nil
}

// MarshalJSON writes the amount without quotes
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// Product represents a sellable item in the storefront catalog
type Product struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         Price  `json:"price"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	StockQuantity int    `json:"stockQuantity"`
	SKU           string `json:"sku"`
	Slug          string `json:"slug"`
}

// NewProduct creates a product with the fields the catalog requires.
// The slug and image path are derived from the name.
func NewProduct(id int, sku, name, category, price string) (*Product, error) {
	amount, err := PriceFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", price, err)
	}

	name = SanitizeString(name)
	p := &Product{
		ID:       id,
		Name:     name,
		Category: SanitizeString(category),
		Price:    amount,
		SKU:      SanitizeString(sku),
	}
	p.SetSlug(Slugify(name))

	return p, nil
}

// SetSlug sets the slug and the image path that follows from it
func (p *Product) SetSlug(slug string) {
	p.Slug = slug
	p.ImageURL = "/images/products/" + slug + ".svg"
}

// Validate validates the product data
func (p *Product) Validate() error {
	if err := ValidatePositiveInteger(p.ID, "id"); err != nil {
		return err
	}

	if err := ValidateRequired(p.Name, "name"); err != nil {
		return err
	}

	if err := ValidateRequired(p.Category, "category"); err != nil {
		return err
	}

	if err := ValidateNonNegativeAmount(p.Price.Decimal, "price"); err != nil {
		return err
	}

	if err := ValidateNonNegativeInteger(p.StockQuantity, "stockQuantity"); err != nil {
		return err
	}

	if err := ValidateRequired(p.SKU, "sku"); err != nil {
		return err
	}

	return ValidateSlug(p.Slug, "slug")
}

// GetSearchableText returns the fields a text query is matched against
func (p *Product) GetSearchableText() []string {
	return []string{p.Name, p.Description}
}
