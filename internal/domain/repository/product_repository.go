package repository

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros de igualdad/rango para listados de productos.
type ProductFilter struct {
	Category string
	Status   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository define el puerto de persistencia de productos, incluidas
// las primitivas atómicas de stock que usa el ledger.
//
// ApplyStockDelta y SetStockQuantity devuelven true si y solo si modificaron
// exactamente una fila. Para deltas negativos, ApplyStockDelta debe ser una
// única operación condicional en el almacén (compare-and-set sobre
// current_stock), nunca un read-then-write en la aplicación: es el único
// mecanismo de control de concurrencia del sistema.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	Exists(ctx context.Context, id string) (bool, error)
	// ApplyStockDelta suma delta al stock. Con delta negativo solo procede si
	// current_stock >= |delta|; false con stock insuficiente es un resultado
	// normal, no un error.
	ApplyStockDelta(ctx context.Context, id string, delta int64) (bool, error)
	// SetStockQuantity fija el stock en un valor absoluto (ADJUSTMENT).
	SetStockQuantity(ctx context.Context, id string, quantity int64) (bool, error)
}
