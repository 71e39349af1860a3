package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
)

func TestPageQuery_Normalize(t *testing.T) {
	casos := []struct {
		nombre    string
		in        dto.PageQuery
		wantPage  int
		wantLimit int
	}{
		{"sin valores aplica defaults", dto.PageQuery{}, 1, 10},
		{"page negativa se corrige a 1", dto.PageQuery{Page: -3, Limit: 20}, 1, 20},
		{"limit cero toma el default", dto.PageQuery{Page: 2}, 2, 10},
		{"limit mayor al tope se recorta a 100", dto.PageQuery{Page: 1, Limit: 500}, 1, 100},
		{"valores válidos se respetan", dto.PageQuery{Page: 4, Limit: 25}, 4, 25},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			q := c.in
			q.Normalize()
			assert.Equal(t, c.wantPage, q.Page)
			assert.Equal(t, c.wantLimit, q.Limit)
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	q := dto.PageQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Offset())

	q = dto.PageQuery{Page: 1, Limit: 50}
	assert.Equal(t, 0, q.Offset())
}

func TestNewPageMeta(t *testing.T) {
	// 25 elementos, 10 por página: 3 páginas.
	meta := dto.NewPageMeta(25, 1, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)

	meta = dto.NewPageMeta(25, 3, 10)
	assert.False(t, meta.HasNextPage, "la última página no tiene siguiente")
	assert.True(t, meta.HasPreviousPage)

	// Página más allá de la última: sin siguiente ni anterior si queda fuera
	// del rango total+1.
	meta = dto.NewPageMeta(25, 4, 10)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage, "la página inmediatamente posterior a la última aún reporta anterior")

	meta = dto.NewPageMeta(25, 9, 10)
	assert.False(t, meta.HasPreviousPage, "páginas muy lejanas no reportan anterior")
}

func TestNewPageMeta_SinResultados(t *testing.T) {
	meta := dto.NewPageMeta(0, 1, 10)
	assert.Equal(t, int64(0), meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)
}

func TestNewPageMeta_DivisionExacta(t *testing.T) {
	meta := dto.NewPageMeta(30, 2, 10)
	assert.Equal(t, int64(3), meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}
