package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. CurrentStock fija el
// stock inicial; después solo cambia vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Status       string          `json:"status,omitempty"`
	CurrentStock int64           `json:"current_stock"`
}

// UpdateProductRequest body para PUT /api/products/:id. No permite modificar
// CurrentStock (se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// ProductFilterQuery filtros para el listado de productos.
type ProductFilterQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	MinPrice string `query:"min_price"`
	MaxPrice string `query:"max_price"`
	PageQuery
}

// ProductResponse representación externa de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	CurrentStock int64           `json:"current_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
	Meta PageMeta          `json:"meta"`
}
