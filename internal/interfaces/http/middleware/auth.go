package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims representa as claims esperadas no token de acesso
type AuthClaims struct {
	UserID int `json:"user_id"`
	FarmID int `json:"farm_id"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware valida o bearer token e guarda as claims no contexto da
// requisição. O farm_id das claims fica disponível em c.Locals("farm_id") para
// os handlers conferirem a propriedade do recurso acessado.
func NewAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token de acesso ausente",
			})
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &AuthClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token de acesso inválido",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("farm_id", claims.FarmID)

		return c.Next()
	}
}
