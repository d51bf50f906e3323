package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/pkg/jwt"
)

// LocalPrincipal clave de Locals donde AuthMiddleware deja la identidad del token.
const LocalPrincipal = "principal"

// Principal identidad autenticada extraída del JWT.
type Principal struct {
	UserID uint
	Email  string
	Roles  []string
}

// AuthMiddleware valida el Bearer Token JWT y guarda el Principal en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalPrincipal, Principal{UserID: claims.UserID, Email: claims.Email, Roles: claims.Roles})
		return c.Next()
	}
}

// GetPrincipal devuelve la identidad del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(Principal)
	return p, ok
}

// GetUserID devuelve el UserID del contexto, 0 si no hay sesión.
func GetUserID(c *fiber.Ctx) uint {
	p, _ := GetPrincipal(c)
	return p.UserID
}

// GetRoles devuelve los roles del contexto.
func GetRoles(c *fiber.Ctx) []string {
	p, _ := GetPrincipal(c)
	return p.Roles
}
