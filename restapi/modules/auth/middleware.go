package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TokenFromRequest extracts the bearer token from the Authorization header,
// falling back to the auth cookie set at login. Returns ErrMissingToken when
// neither is present.
func TokenFromRequest(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", ErrInvalidToken
		}
		return strings.TrimPrefix(header, "Bearer "), nil
	}

	if token := c.Cookies("auth_token"); token != "" {
		return token, nil
	}

	return "", ErrMissingToken
}

// RequireAuth middleware validates the JWT and blocks unauthenticated requests
func RequireAuth(c *fiber.Ctx) error {
	token, err := TokenFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired session",
		})
	}

	// Store user info in context
	c.Locals(LocalAuthState, true)
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalUsername, claims.Username)
	c.Locals(LocalRole, claims.Role)

	return c.Next()
}

// RequireRole middleware checks if the user has one of the required roles
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals(LocalRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if CheckRole(allowedRoles, userRole) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

// CheckRole reports whether the caller's role is in the allowed set
func CheckRole(allowedRoles []string, userRole string) bool {
	for _, role := range allowedRoles {
		if userRole == role {
			return true
		}
	}
	return false
}
