// Package auth provides authentication handlers for Fiber.
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/vulnmgt-backend/model"
)

// Login verifies credentials against the store and issues a JWT. The token is
// returned in the body for Authorization-header clients and also set as an
// HTTP-only cookie.
func Login(creds CredentialStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Username == "" || req.Password == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		user, err := creds.Verify(req.Username, req.Password)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		token, err := GenerateJWT(user.ID, user.Username, user.Role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		SetAuthCookie(c, token)

		return c.JSON(model.LoginResponse{
			Token: token,
			User:  *user,
		})
	}
}

// Logout clears the auth cookie
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     "auth_token",
			Value:    "",
			Expires:  time.Now().Add(-1 * time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   false,
			SameSite: "Lax",
			Path:     "/",
		})
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

// Me returns the authenticated principal from the request context
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals(LocalUsername).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		return c.JSON(fiber.Map{
			"id":       c.Locals(LocalUserID),
			"username": username,
			"role":     c.Locals(LocalRole),
		})
	}
}

// SetAuthCookie attaches the session token as an HTTP-only cookie
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(GetJWTExpirationTime()),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Path:     "/",
	})
}
