package middleware

import (
	"footballfinder/internal/models"
	"footballfinder/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// userLocalsKey is where the authenticated user is stored in the Fiber context.
const userLocalsKey = "user"

// Policy decides how much of an authentication failure a route reveals.
type Policy int

const (
	// Collapsed reports every failure as "Authentication required".
	Collapsed Policy = iota
	// Detailed reports missing header, expired token, invalid token and unknown user separately.
	Detailed
)

// AuthRequired is a Fiber middleware that resolves the Authorization header to a user.
func AuthRequired(authService *services.AuthService, policy Policy, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"path":       c.Path(),
				"request_id": c.Locals(RequestIDKey),
			}).Info("authentication failed")

			if policy == Detailed || !isAuthFailure(err) {
				return err
			}
			return oops.Code(services.CodeUnauthenticated).Errorf("Authentication required")
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

func isAuthFailure(err error) bool {
	for _, code := range []string{
		services.CodeAuthMissing,
		services.CodeTokenInvalid,
		services.CodeTokenExpired,
		services.CodeUserNotFound,
	} {
		if services.HasCode(err, code) {
			return true
		}
	}
	return false
}
