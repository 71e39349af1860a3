package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// UseCase orquesta el ledger de inventario: crea, actualiza y elimina
// movimientos manteniendo el stock del producto consistente con el log.
//
// No hay transacción multi-statement: el único mecanismo de concurrencia es
// la primitiva condicional atómica de ProductRepository. La secuencia es
// siempre "efecto de stock primero, registro después", de modo que el log
// nunca contiene un evento cuyo efecto no pudo aplicarse. El hueco inverso
// (stock mutado y escritura del log fallida) es una brecha de consistencia
// ante crash conocida y documentada.
type UseCase struct {
	movements repository.StockMovementRepository
	products  repository.ProductRepository
	users     repository.UserRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	movements repository.StockMovementRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) *UseCase {
	return &UseCase{movements: movements, products: products, users: users}
}

// deltaFor devuelve el delta con signo de un tipo y una magnitud.
// ADJUSTMENT no es un delta: devuelve nil.
func deltaFor(movementType string, quantity int64) *int64 {
	switch movementType {
	case entity.MovementTypeIN:
		d := quantity
		return &d
	case entity.MovementTypeOUT:
		d := -quantity
		return &d
	}
	return nil
}

func validateMovementInput(movementType, reason string, quantity int64) error {
	if !entity.ValidMovementType(movementType) || !entity.ValidMovementReason(reason) || quantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un movimiento: verifica existencia de producto y usuario,
// aplica el efecto de stock y solo entonces persiste el registro.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovementInput(in.Type, in.Reason, in.Quantity); err != nil {
		return nil, err
	}

	// Ambas verificaciones de existencia antes de mutar stock.
	productExists, err := uc.products.Exists(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, domain.ErrProductNotFound
	}
	userExists, err := uc.users.Exists(ctx, in.CreatedBy)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, domain.ErrUserNotFound
	}

	if in.Type == entity.MovementTypeADJUSTMENT {
		// Un ajuste a N significa "el stock queda exactamente en N",
		// sin importar el valor previo.
		applied, err := uc.products.SetStockQuantity(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return nil, err
		}
		if !applied {
			return nil, domain.ErrProductNotFound
		}
	} else {
		delta := *deltaFor(in.Type, in.Quantity)
		applied, err := uc.products.ApplyStockDelta(ctx, in.ProductID, delta)
		if err != nil {
			return nil, err
		}
		if !applied {
			if delta < 0 {
				return nil, domain.ErrInsufficientStock
			}
			return nil, domain.ErrProductNotFound
		}
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Reason:    in.Reason,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.movements.Create(ctx, movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// Update aplica un patch a un movimiento existente con el protocolo
// revertir-antes-de-aplicar: primero deshace el delta anterior (si lo hay),
// luego aplica el efecto nuevo y, si este falla por stock insuficiente,
// compensa re-aplicando el delta anterior para dejar el stock exactamente
// como estaba antes de la llamada.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	existing, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	oldProductID := existing.ProductID
	// oldDelta es nil si el tipo anterior era ADJUSTMENT: un ajuste no tiene
	// inversa bien definida y su valor absoluto previo se deja en su lugar.
	oldDelta := deltaFor(existing.Type, existing.Quantity)

	// Overlay del patch sobre el registro existente.
	newProductID := oldProductID
	if in.ProductID != nil {
		newProductID = *in.ProductID
	}
	newType := existing.Type
	if in.Type != nil {
		newType = *in.Type
	}
	newQuantity := existing.Quantity
	if in.Quantity != nil {
		newQuantity = *in.Quantity
	}
	newReason := existing.Reason
	if in.Reason != nil {
		newReason = *in.Reason
	}
	newCreatedBy := existing.CreatedBy
	if in.CreatedBy != nil {
		newCreatedBy = *in.CreatedBy
	}
	if err := validateMovementInput(newType, newReason, newQuantity); err != nil {
		return nil, err
	}

	// Revertir primero evita contar doble el efecto viejo y el nuevo cuando
	// el producto no cambia.
	if oldDelta != nil {
		reverted, err := uc.products.ApplyStockDelta(ctx, oldProductID, -*oldDelta)
		if err != nil {
			return nil, err
		}
		if !reverted {
			// Stock insuficiente hasta para deshacer un IN previo: no se
			// toca nada y el movimiento queda intacto.
			return nil, domain.ErrCannotRevert
		}
	}

	if newType == entity.MovementTypeADJUSTMENT {
		applied, err := uc.products.SetStockQuantity(ctx, newProductID, newQuantity)
		if err != nil {
			return nil, err
		}
		if !applied {
			uc.compensate(ctx, oldProductID, oldDelta)
			return nil, domain.ErrProductNotFound
		}
	} else {
		newDelta := *deltaFor(newType, newQuantity)
		applied, err := uc.products.ApplyStockDelta(ctx, newProductID, newDelta)
		if err != nil {
			return nil, err
		}
		if !applied {
			// Compensación: re-aplicar el delta viejo deja el efecto neto
			// idéntico a un update que nunca ocurrió.
			uc.compensate(ctx, oldProductID, oldDelta)
			if newDelta < 0 {
				return nil, domain.ErrInsufficientStock
			}
			return nil, domain.ErrProductNotFound
		}
	}

	existing.ProductID = newProductID
	existing.Quantity = newQuantity
	existing.Type = newType
	existing.Reason = newReason
	existing.CreatedBy = newCreatedBy
	existing.UpdatedAt = time.Now()
	if err := uc.movements.Update(ctx, existing); err != nil {
		return nil, err
	}
	return toMovementResponse(existing), nil
}

// compensate re-aplica el delta viejo tras un fallo del efecto nuevo.
func (uc *UseCase) compensate(ctx context.Context, productID string, oldDelta *int64) {
	if oldDelta == nil {
		return
	}
	_, _ = uc.products.ApplyStockDelta(ctx, productID, *oldDelta)
}

// Remove elimina un movimiento revirtiendo antes su delta. Si la reversión
// falla, el registro se conserva: el log y el stock no deben divergir. El
// valor fijado por un ADJUSTMENT no se revierte (no hay línea base previa).
func (uc *UseCase) Remove(ctx context.Context, id string) error {
	movement, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}

	if delta := deltaFor(movement.Type, movement.Quantity); delta != nil {
		reverted, err := uc.products.ApplyStockDelta(ctx, movement.ProductID, -*delta)
		if err != nil {
			return err
		}
		if !reverted {
			return domain.ErrCannotRevert
		}
	}

	deleted, err := uc.movements.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	movement, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(movement), nil
}

// List devuelve movimientos filtrados con metadatos de paginación.
func (uc *UseCase) List(ctx context.Context, query dto.MovementFilterQuery) (*dto.MovementListResponse, error) {
	query.Normalize()
	filter := repository.StockMovementFilter{
		ProductID: query.ProductID,
		Type:      query.Type,
		Reason:    query.Reason,
		CreatedBy: query.CreatedBy,
	}
	movements, err := uc.movements.List(ctx, filter, query.Limit, query.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.movements.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Data: data,
		Meta: dto.NewPageMeta(total, query.Page, query.Limit),
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Type:      m.Type,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
