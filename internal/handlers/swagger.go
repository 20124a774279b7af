package handlers

// @title Storefront API
// @version 1.0
// @description Catalog search, product recommendations and order notifications for the storefront

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @tag.name search
// @tag.description Catalog search and sorting

// @tag.name recommendations
// @tag.description Similar and featured products

// @tag.name notifications
// @tag.description Order confirmation and shipping emails
