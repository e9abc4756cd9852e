package entities

import "time"

// CatalogItem representa un producto del catálogo.
type CatalogItem struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Image       *string
	Rating      float64
	Price       float64
	InStock     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
