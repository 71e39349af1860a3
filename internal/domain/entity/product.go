package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto.
const (
	ProductStatusActive       = "ACTIVE"
	ProductStatusInactive     = "INACTIVE"
	ProductStatusDiscontinued = "DISCONTINUED"
)

// Product representa un producto del inventario. CurrentStock es una
// proyección derivada de los movimientos: se fija al crear el producto y
// después solo se muta a través de las primitivas atómicas de stock
// (ApplyStockDelta / SetStockQuantity), nunca por Update.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	Category     string
	Status       string
	CurrentStock int64 // invariante: nunca negativo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidProductStatus indica si el estado pertenece al catálogo.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return true
	}
	return false
}
