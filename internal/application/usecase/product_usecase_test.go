package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// memProductRepo repositorio en memoria para los tests del CRUD de productos.
type memProductRepo struct {
	mu       sync.Mutex
	products map[string]entity.Product
	order    []string
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	copia := p
	return &copia, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *memProductRepo) matches(p entity.Product, f repository.ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func (r *memProductRepo) List(_ context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var filtered []*entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok || !r.matches(p, f) {
			continue
		}
		copia := p
		filtered = append(filtered, &copia)
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	filtered = filtered[offset:]
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

func (r *memProductRepo) Count(_ context.Context, f repository.ProductFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, p := range r.products {
		if r.matches(p, f) {
			total++
		}
	}
	return total, nil
}

func (r *memProductRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.products[id]
	return ok, nil
}

func (r *memProductRepo) ApplyStockDelta(_ context.Context, id string, delta int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.CurrentStock+delta < 0 {
		return false, nil
	}
	p.CurrentStock += delta
	r.products[id] = p
	return true, nil
}

func (r *memProductRepo) SetStockQuantity(_ context.Context, id string, quantity int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return false, nil
	}
	p.CurrentStock = quantity
	r.products[id] = p
	return true, nil
}

func createProductReq(name, category string, price string, stock int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         name,
		Category:     category,
		Price:        decimal.RequireFromString(price),
		CurrentStock: stock,
	}
}

func TestProductCreate_DefaultsYValidacion(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), createProductReq("Tornillo 3/8", "ferreteria", "0.50", 100))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.ProductStatusActive, out.Status, "sin status explícito debe quedar ACTIVE")
	assert.Equal(t, int64(100), out.CurrentStock)

	// Nombre vacío, precio negativo y stock negativo se rechazan.
	_, err = uc.Create(context.Background(), createProductReq("", "ferreteria", "1.00", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := createProductReq("Clavo", "ferreteria", "1.00", 0)
	req.Price = decimal.RequireFromString("-1")
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = createProductReq("Clavo", "ferreteria", "1.00", -5)
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El update nunca toca el stock: eso es territorio del kardex.
func TestProductUpdate_NoModificaStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), createProductReq("Martillo", "herramientas", "15.90", 30))
	require.NoError(t, err)

	nuevoNombre := "Martillo de uña"
	nuevoPrecio := decimal.RequireFromString("17.50")
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{
		Name:  &nuevoNombre,
		Price: &nuevoPrecio,
	})
	require.NoError(t, err)

	assert.Equal(t, "Martillo de uña", updated.Name)
	assert.True(t, nuevoPrecio.Equal(updated.Price))
	assert.Equal(t, int64(30), updated.CurrentStock, "el stock debe permanecer intacto")
}

func TestProductUpdate_StatusInvalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), createProductReq("Taladro", "herramientas", "89.00", 5))
	require.NoError(t, err)

	malo := "PAUSADO"
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{Status: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_FiltroPorRangoDePrecio(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	for _, p := range []struct {
		name  string
		price string
	}{
		{"Barato", "2.00"},
		{"Medio", "10.00"},
		{"Caro", "99.00"},
	} {
		_, err := uc.Create(context.Background(), createProductReq(p.name, "general", p.price, 1))
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), dto.ProductFilterQuery{MinPrice: "5", MaxPrice: "50"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Medio", out.Data[0].Name)
	assert.Equal(t, int64(1), out.Meta.Total)

	// Un rango malformado es un 400, no un 500.
	_, err = uc.List(context.Background(), dto.ProductFilterQuery{MinPrice: "cinco"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
