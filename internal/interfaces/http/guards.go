package http

import "github.com/gofiber/fiber/v2"

// Guard decide si un Principal puede usar una ruta.
type Guard func(Principal) bool

// Authenticated acepta cualquier token válido.
func Authenticated() Guard {
	return func(Principal) bool { return true }
}

// HasRole exige el rol indicado.
func HasRole(role string) Guard {
	return HasAnyRole(role)
}

// HasAnyRole exige al menos uno de los roles.
func HasAnyRole(roles ...string) Guard {
	return func(p Principal) bool {
		for _, have := range p.Roles {
			for _, want := range roles {
				if have == want {
					return true
				}
			}
		}
		return false
	}
}

// Require evalúa el guard sobre el Principal. Debe ir DESPUÉS de AuthMiddleware:
// sin Principal responde 401; si el guard lo rechaza, 403.
func Require(guard Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return respondError(c, fiber.StatusUnauthorized, "autenticación requerida")
		}
		if !guard(p) {
			return respondError(c, fiber.StatusForbidden, "acceso denegado: rol insuficiente")
		}
		return c.Next()
	}
}

// RequireRole atajo de Require(HasAnyRole(roles...)).
func RequireRole(roles ...string) fiber.Handler {
	return Require(HasAnyRole(roles...))
}
