package dto

import "time"

// CreateMovementRequest body para POST /api/stock-movements.
// Quantity es magnitud (>= 0): con type IN/OUT es el delta sin signo, con
// ADJUSTMENT es el valor absoluto que tomará el stock.
type CreateMovementRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	CreatedBy string `json:"created_by"`
}

// UpdateMovementRequest body para PUT /api/stock-movements/:id. Campos nil no
// se tocan; el efecto sobre stock se recalcula con el overlay del patch.
type UpdateMovementRequest struct {
	ProductID *string `json:"product_id,omitempty"`
	Quantity  *int64  `json:"quantity,omitempty"`
	Type      *string `json:"type,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	CreatedBy *string `json:"created_by,omitempty"`
}

// MovementFilterQuery filtros de igualdad para el listado de movimientos.
type MovementFilterQuery struct {
	ProductID string `query:"product_id"`
	Type      string `query:"type"`
	Reason    string `query:"reason"`
	CreatedBy string `query:"created_by"`
	PageQuery
}

// MovementResponse representación externa de un movimiento.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Data []MovementResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}
