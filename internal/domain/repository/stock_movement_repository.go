package repository

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// StockMovementFilter filtros de igualdad para el log de movimientos.
type StockMovementFilter struct {
	ProductID string
	Type      string
	Reason    string
	CreatedBy string
}

// StockMovementRepository define el puerto de persistencia del log de
// movimientos (la pista de auditoría). GetByID devuelve nil sin error si el
// movimiento no existe; Delete devuelve false si no había fila que borrar.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id string) (*entity.StockMovement, error)
	Update(ctx context.Context, movement *entity.StockMovement) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter StockMovementFilter, limit, offset int) ([]*entity.StockMovement, error)
	Count(ctx context.Context, filter StockMovementFilter) (int64, error)
}
