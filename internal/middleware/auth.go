package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

// Locals keys set by JWTAuth for downstream handlers.
const (
	LocalUserID = "user_id"
	LocalEmail  = "user_email"
	LocalName   = "user_name"
)

// JWTAuth guards a route with a bearer token. All mutating entity routes and
// the user endpoints use it.
func JWTAuth(jwtManager *utils.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No token, authorization denied"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No token, authorization denied"})
		}

		claims, err := jwtManager.GetClaims(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token is not valid"})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)

		logger.Debug("jwt validated", zap.String("user_id", claims.UserID))
		return c.Next()
	}
}
