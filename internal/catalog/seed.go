package catalog

import (
	"storefront-api/internal/models"
)

// seedProducts returns the static storefront catalog.
// It matches the products served by the order service.
func seedProducts() []models.Product {
	return []models.Product{
		seedProduct(1, "ELEC-001", "wireless-noise-cancelling-headphones", "Wireless Noise-Cancelling Headphones", "Electronics", "299.99", 50,
			"Premium over-ear headphones with active noise cancellation and 30-hour battery life"),
		seedProduct(2, "ELEC-002", "ultra-slim-laptop-15", `Ultra-Slim Laptop 15"`, "Electronics", "1299.99", 25,
			"Lightweight 15-inch laptop with 16GB RAM and 512GB SSD"),
		seedProduct(3, "ELEC-003", "smart-watch-pro", "Smart Watch Pro", "Electronics", "399.99", 75,
			"Advanced fitness tracking, heart rate monitoring, and 7-day battery life"),
		seedProduct(4, "ELEC-004", "4k-action-camera", "4K Action Camera", "Electronics", "249.99", 40,
			"Waterproof action camera with 4K video and image stabilization"),
		seedProduct(5, "CLTH-001", "premium-cotton-tshirt", "Premium Cotton T-Shirt", "Clothing", "39.99", 200,
			"100% organic cotton, comfortable fit, available in multiple colors"),
		seedProduct(6, "CLTH-002", "leather-crossbody-bag", "Leather Crossbody Bag", "Clothing", "89.99", 60,
			"Handcrafted genuine leather bag with adjustable strap"),
		seedProduct(7, "CLTH-003", "running-shoes-ultra", "Running Shoes Ultra", "Clothing", "129.99", 80,
			"Lightweight running shoes with responsive cushioning"),
		seedProduct(8, "CLTH-004", "denim-jacket-classic", "Denim Jacket Classic", "Clothing", "79.99", 45,
			"Timeless denim jacket with a comfortable relaxed fit"),
		seedProduct(9, "HOME-001", "robot-vacuum-cleaner", "Robot Vacuum Cleaner", "Home & Kitchen", "449.99", 30,
			"Smart mapping, app control, and self-emptying base"),
		seedProduct(10, "HOME-002", "stainless-steel-cookware-set", "Stainless Steel Cookware Set", "Home & Kitchen", "199.99", 35,
			"10-piece set with induction-compatible pots and pans"),
		seedProduct(11, "SPRT-001", "yoga-mat-premium", "Yoga Mat Premium", "Sports", "49.99", 100,
			"Extra thick non-slip mat with carrying strap"),
		seedProduct(12, "SPRT-002", "mountain-bike-helmet", "Mountain Bike Helmet", "Sports", "69.99", 90,
			"Ventilated helmet with MIPS technology for enhanced safety"),
	}
}

// seedProduct builds one seed entry. Seed slugs are fixed rather than derived
// because the storefront's image paths depend on them.
func seedProduct(id int, sku, slug, name, category, price string, stock int, description string) models.Product {
	p, err := models.NewProduct(id, sku, name, category, price)
	if err != nil {
		panic("catalog: invalid seed product: " + err.Error())
	}
	p.Description = description
	p.StockQuantity = stock
	p.SetSlug(slug)
	return *p
}
