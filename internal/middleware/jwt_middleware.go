package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"brandreview/internal/repositories"
	"brandreview/internal/services"
)

// AuthRequired is a Fiber middleware that checks for a valid JWT and
// stores the authenticated identity in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Numeric JWT claims decode as float64.
		rawID, ok := claims["user_id"].(float64)
		if !ok || rawID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token claims",
			})
		}

		c.Locals("user_id", uint(rawID))
		c.Locals("username", claims["username"])

		return c.Next()
	}
}

// AdminRequired is a Fiber middleware that re-reads the authenticated
// user and rejects non-admins. It must run after AuthRequired. The
// fresh read means a revoked admin flag takes effect immediately
// instead of riding out the token lifetime.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		user, err := authService.GetUser(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Admin access required",
				})
			}
			log.Printf("Failed to load user %d for admin check: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify permissions",
			})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}

		return c.Next()
	}
}
