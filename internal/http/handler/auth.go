package handler

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/service"
)

type signupRequest struct {
	Username string
	Password string
}

func (r signupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

// Signup registers a new account. Credentials arrive as form fields.
func Signup(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := signupRequest{
			Username: c.FormValue("username"),
			Password: c.FormValue("password"),
		}
		if err := req.Validate(); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}

		user, err := authSvc.Signup(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"msg":      "User created successfully",
		})
	}
}

// IssueToken exchanges form credentials for a bearer token.
func IssueToken(authSvc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.FormValue("username")
		password := c.FormValue("password")
		if username == "" || password == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		}

		token, err := authSvc.Login(c.UserContext(), username, password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

// Signout acknowledges sign-out. Tokens are stateless, so the client simply
// discards its copy; nothing is revoked server side.
func Signout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"msg": "Successfully signed out"})
	}
}
