package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/model"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

// UserLocalKey is the context locals key holding the authenticated *model.User.
const UserLocalKey = "current_user"

// Authenticate validates the Authorization bearer token and stores the
// resolved account in context locals. Requests without a valid token are
// rejected with 401 and a WWW-Authenticate challenge.
func Authenticate(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		user, err := auth.ResolveToken(c.UserContext(), token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the account stored by Authenticate, or nil on routes
// that skipped it.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(UserLocalKey).(*model.User)
	return user
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return fiber.NewError(fiber.StatusUnauthorized, "could not validate credentials")
}
