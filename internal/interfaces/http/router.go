package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/internal/application/auth"
	"github.com/jhoicas/catalog-api/internal/application/usecase"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	HealthCheck func(ctx context.Context) error // opcional; nil responde siempre ok
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.HealthCheck))

	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	superAdmin := RequireRole(entity.RoleSuperAdmin)
	anyRole := Require(HasAnyRole(entity.RoleUser, entity.RoleSuperAdmin))

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authn, authHandler.Me)

	// Categories (protegido)
	categories := api.Group("/categories", authn)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", categoryHandler.ListProducts)
	categories.Post("/", superAdmin, categoryHandler.Create)
	categories.Put("/:id", superAdmin, categoryHandler.Replace)
	categories.Patch("/:id", superAdmin, categoryHandler.Patch)
	categories.Delete("/:id", superAdmin, categoryHandler.Delete)
	categories.Post("/:id/products", superAdmin, categoryHandler.AttachProduct)
	categories.Delete("/:categoryId/products/:productId", superAdmin, categoryHandler.DetachProduct)

	// Products (protegido)
	products := api.Group("/products", authn)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/category/:categoryId", anyRole, productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", superAdmin, productHandler.Create)
	products.Put("/:id", superAdmin, productHandler.Replace)
	products.Patch("/:id", superAdmin, productHandler.Patch)
	products.Delete("/:id", superAdmin, productHandler.Delete)
}

// healthHandler godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      503  {object}  dto.Envelope
// @Router       /health [get]
func healthHandler(check func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if check != nil {
			if err := check(c.UserContext()); err != nil {
				return respondError(c, fiber.StatusServiceUnavailable, "base de datos no disponible")
			}
		}
		return respond(c, fiber.StatusOK, "ok", nil)
	}
}
