package postgres

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// openTestDB abre una base SQLite en memoria con el esquema migrado.
// Una sola conexión: cada conexión a ":memory:" sería una base distinta.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig(logger.Nop(), "silent"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func seedCategory(t *testing.T, repo *CategoryRepo, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	require.NotZero(t, c.ID)
	return c
}

func seedProduct(t *testing.T, repo *ProductRepo, name string, categoryID uint) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.RequireFromString("9.99"), Stock: 5, CategoryID: categoryID}
	require.NoError(t, repo.Create(context.Background(), p))
	require.NotZero(t, p.ID)
	return p
}

func TestCategoryRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(openTestDB(t))

	c := seedCategory(t, repo, "Tools")

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tools", got.Name)

	ok, err := repo.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got.Description = "Herramientas"
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", again.Description)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing, "categoría inexistente devuelve nil sin error")

	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryRepo_UpdateInexistente(t *testing.T) {
	repo := NewCategoryRepository(openTestDB(t))
	err := repo.Update(context.Background(), &entity.Category{ID: 42, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepo_ListPaginado(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(openTestDB(t))
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		seedCategory(t, repo, n)
	}

	page, err := repo.List(ctx, domain.PageRequest{Number: 1, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C", page.Items[0].Name)
	assert.Equal(t, "D", page.Items[1].Name)

	last, err := repo.List(ctx, domain.PageRequest{Number: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "E", last.Items[0].Name)
}

func TestCategoryRepo_DeleteBorraProductosEnCascada(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)

	tools := seedCategory(t, categories, "Tools")
	food := seedCategory(t, categories, "Food")
	hammer := seedProduct(t, products, "Hammer", tools.ID)
	seedProduct(t, products, "Saw", tools.ID)
	bread := seedProduct(t, products, "Bread", food.ID)

	require.NoError(t, categories.Delete(ctx, tools.ID))

	gone, err := products.GetByID(ctx, hammer.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	page, err := products.ListByCategory(ctx, tools.ID, domain.PageRequest{Number: 0, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalElements)

	kept, err := products.GetByID(ctx, bread.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept, "los productos de otras categorías no se tocan")

	assert.ErrorIs(t, categories.Delete(ctx, tools.ID), domain.ErrNotFound)
}

func TestProductRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	c := seedCategory(t, categories, "Tools")

	p := seedProduct(t, products, "Hammer", c.ID)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hammer", got.Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(got.Price), "precio leído: %s", got.Price)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, c.ID, got.CategoryID)

	got.Stock = 0
	got.Price = decimal.NewFromInt(12)
	got.Description = ""
	require.NoError(t, products.Update(ctx, got))

	again, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Stock, "stock 0 se persiste aunque sea valor cero")
	assert.True(t, decimal.NewFromInt(12).Equal(again.Price))

	require.NoError(t, products.Delete(ctx, p.ID))
	assert.ErrorIs(t, products.Delete(ctx, p.ID), domain.ErrNotFound)
	assert.ErrorIs(t, products.Update(ctx, got), domain.ErrNotFound)
}

func TestProductRepo_ListByCategory(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	tools := seedCategory(t, categories, "Tools")
	food := seedCategory(t, categories, "Food")
	for i := 0; i < 12; i++ {
		seedProduct(t, products, "Tool", tools.ID)
	}
	seedProduct(t, products, "Bread", food.ID)

	page, err := products.ListByCategory(ctx, tools.ID, domain.PageRequest{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages())
	assert.Len(t, page.Items, 2)

	all, err := products.List(ctx, domain.PageRequest{Number: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(13), all.TotalElements)
	assert.Len(t, all.Items, 10)

	none, err := products.ListByCategory(ctx, 999, domain.PageRequest{Number: 0, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, none.Items)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	u := &entity.User{Email: "ana@example.com", PasswordHash: "x", Role: entity.RoleUser, Active: true}
	require.NoError(t, repo.Create(ctx, u))

	dup := &entity.User{Email: "ana@example.com", PasswordHash: "y", Role: entity.RoleUser, Active: true}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	missing, err := repo.GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
