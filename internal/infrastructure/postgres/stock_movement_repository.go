package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, quantity, type, reason, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Type,
		movement.Reason, movement.CreatedBy, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil sin error si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, type, reason, created_by, created_at, updated_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Reason,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// Update sobreescribe el registro completo del movimiento.
func (r *StockMovementRepo) Update(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		UPDATE stock_movements SET product_id = $2, quantity = $3, type = $4, reason = $5, created_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Type,
		movement.Reason, movement.CreatedBy, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID. Devuelve false si no había fila.
func (r *StockMovementRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete stock movement: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// List lista movimientos con filtros de igualdad, ordenados por creación descendente.
func (r *StockMovementRepo) List(ctx context.Context, filter repository.StockMovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	args := []any{}
	query := `
		SELECT id, product_id, quantity, type, reason, created_by, created_at, updated_at
		FROM stock_movements` + movementWhere(filter, &args)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Reason,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count cuenta movimientos que cumplen el filtro.
func (r *StockMovementRepo) Count(ctx context.Context, filter repository.StockMovementFilter) (int64, error) {
	args := []any{}
	query := `SELECT count(*) FROM stock_movements` + movementWhere(filter, &args)
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return total, nil
}

// movementWhere arma la cláusula WHERE según los filtros presentes y acumula args.
func movementWhere(filter repository.StockMovementFilter, args *[]any) string {
	where := ""
	add := func(cond string, value any) {
		*args = append(*args, value)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(*args))
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.Type != "" {
		add("type = $%d", filter.Type)
	}
	if filter.Reason != "" {
		add("reason = $%d", filter.Reason)
	}
	if filter.CreatedBy != "" {
		add("created_by = $%d", filter.CreatedBy)
	}
	return where
}
