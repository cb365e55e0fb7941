package models

import "time"

const ProductsSet = "products"

const (
	ProductStatusActive = "active"
	ProductStatusHidden = "hidden"
)

// Product is a catalog item. Price stays a decimal string because the
// storefront renders it verbatim.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
