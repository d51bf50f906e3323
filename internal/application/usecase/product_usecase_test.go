package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestProductCreate_Validaciones(t *testing.T) {
	cats, prods, _ := newUseCases()
	ctx := context.Background()
	c, err := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	ref := &dto.CategoryRef{ID: c.ID}

	tests := []struct {
		name string
		in   dto.ProductRequest
	}{
		{"sin nombre", dto.ProductRequest{Price: price("1"), Category: ref}},
		{"sin precio", dto.ProductRequest{Name: "Hammer", Category: ref}},
		{"precio cero", dto.ProductRequest{Name: "Hammer", Price: price("0"), Category: ref}},
		{"precio negativo", dto.ProductRequest{Name: "Hammer", Price: price("-3.5"), Category: ref}},
		{"precio con más de 2 decimales", dto.ProductRequest{Name: "Hammer", Price: price("0.001"), Category: ref}},
		{"precio fuera de rango", dto.ProductRequest{Name: "Hammer", Price: price("100000000"), Category: ref}},
		{"stock negativo", dto.ProductRequest{Name: "Hammer", Price: price("1"), Stock: -1, Category: ref}},
		{"sin categoría", dto.ProductRequest{Name: "Hammer", Price: price("1")}},
		{"categoría sin id", dto.ProductRequest{Name: "Hammer", Price: price("1"), Category: &dto.CategoryRef{}}},
		{"categoría inexistente", dto.ProductRequest{Name: "Hammer", Price: price("1"), Category: &dto.CategoryRef{ID: 999}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prods.Create(ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	out, err := prods.Create(ctx, dto.ProductRequest{Name: "Hammer", Price: price("9.99"), Stock: 0, Category: ref})
	require.NoError(t, err)
	assert.Equal(t, c.ID, out.CategoryID)
	assert.Equal(t, 0, out.Stock)
}

func TestProductPatch_SoloCamposPresentes(t *testing.T) {
	cats, prods, _ := newUseCases()
	ctx := context.Background()
	tools, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	garden, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Garden"})
	p, err := prods.Create(ctx, dto.ProductRequest{Name: "Hammer", Description: "steel", Price: price("9.99"), Stock: 5, Category: &dto.CategoryRef{ID: tools.ID}})
	require.NoError(t, err)

	out, err := prods.Patch(ctx, p.ID, dto.PatchProductRequest{Stock: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Stock)
	assert.Equal(t, "Hammer", out.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(out.Price))

	out, err = prods.Patch(ctx, p.ID, dto.PatchProductRequest{Category: &dto.CategoryRef{ID: garden.ID}})
	require.NoError(t, err)
	assert.Equal(t, garden.ID, out.CategoryID)

	_, err = prods.Patch(ctx, p.ID, dto.PatchProductRequest{Category: &dto.CategoryRef{ID: 999}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductPatch_RechazoNoModifica(t *testing.T) {
	cats, prods, _ := newUseCases()
	ctx := context.Background()
	c, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	p, err := prods.Create(ctx, dto.ProductRequest{Name: "Hammer", Price: price("9.99"), Stock: 5, Category: &dto.CategoryRef{ID: c.ID}})
	require.NoError(t, err)

	_, err = prods.Patch(ctx, p.ID, dto.PatchProductRequest{Name: strPtr("Mallet"), Price: price("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = prods.Patch(ctx, p.ID, dto.PatchProductRequest{Stock: intPtr(-2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := prods.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(got.Price))
	assert.Equal(t, 5, got.Stock)
}

func TestProductReplace(t *testing.T) {
	cats, prods, _ := newUseCases()
	ctx := context.Background()
	c, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	p, err := prods.Create(ctx, dto.ProductRequest{Name: "Hammer", Description: "steel", Price: price("9.99"), Stock: 5, Category: &dto.CategoryRef{ID: c.ID}})
	require.NoError(t, err)

	out, err := prods.Replace(ctx, p.ID, dto.ProductRequest{Name: "Mallet", Price: price("12.00"), Category: &dto.CategoryRef{ID: c.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Mallet", out.Name)
	assert.Empty(t, out.Description)
	assert.Equal(t, 0, out.Stock)

	_, err = prods.Replace(ctx, 999, dto.ProductRequest{Name: "X", Price: price("1"), Category: &dto.CategoryRef{ID: c.ID}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	cats, prods, _ := newUseCases()
	ctx := context.Background()
	c, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	p, err := prods.Create(ctx, dto.ProductRequest{Name: "Hammer", Price: price("9.99"), Category: &dto.CategoryRef{ID: c.ID}})
	require.NoError(t, err)

	out, err := prods.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", out.Name)

	_, err = prods.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListByCategory_SinCategoriaDevuelvePaginaVacia(t *testing.T) {
	_, prods, _ := newUseCases()
	page, err := prods.ListByCategory(context.Background(), 42, dto.PageQuery{Page: 1, Size: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.PageNumber)
}

func TestProductPrecio_LimitesDeLaColumna(t *testing.T) {
	cats, prods, s := newUseCases()
	ctx := context.Background()
	c, _ := cats.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	ref := &dto.CategoryRef{ID: c.ID}

	out, err := prods.Create(ctx, dto.ProductRequest{Name: "Caja fuerte", Price: price("99999999.99"), Category: ref})
	require.NoError(t, err, "el máximo de decimal(10,2) es válido")
	assert.Equal(t, "99999999.99", out.Price.String())

	out, err = prods.Create(ctx, dto.ProductRequest{Name: "Clavo", Price: price("0.010"), Category: ref})
	require.NoError(t, err, "ceros a la derecha no cuentan como decimales")
	assert.True(t, decimal.RequireFromString("0.01").Equal(out.Price))

	_, err = cats.AttachProduct(ctx, c.ID, dto.ProductRequest{Name: "Tornillo", Price: price("0.001")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, s.products, 2, "los rechazos no guardan filas")

	_, err = prods.Patch(ctx, out.ID, dto.PatchProductRequest{Price: price("0.001")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = prods.Patch(ctx, out.ID, dto.PatchProductRequest{Price: price("100000000.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := prods.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.01").Equal(got.Price), "el precio guardado no cambia")
}
