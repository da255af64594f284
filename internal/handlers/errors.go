package handlers

import (
	"errors"

	"footballfinder/internal/middleware"
	"footballfinder/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// errorResponse pairs a status code with the message shown to the client.
type errorResponse struct {
	status  int
	message string
}

// codeResponses maps service error codes to responses. An empty message means the
// error's own text is safe to show.
var codeResponses = map[string]errorResponse{
	services.CodeInvalidInput:       {fiber.StatusBadRequest, ""},
	services.CodeInvalidDate:        {fiber.StatusBadRequest, "Invalid date format"},
	services.CodeDuplicateEmail:     {fiber.StatusBadRequest, "Email already registered"},
	services.CodeInvalidCredentials: {fiber.StatusUnauthorized, "Invalid email or password"},
	services.CodeAuthMissing:        {fiber.StatusUnauthorized, "No authorization header"},
	services.CodeTokenExpired:       {fiber.StatusUnauthorized, "Token has expired"},
	services.CodeTokenInvalid:       {fiber.StatusUnauthorized, "Invalid token"},
	services.CodeUnauthenticated:    {fiber.StatusUnauthorized, "Authentication required"},
	services.CodeUserNotFound:       {fiber.StatusNotFound, "User not found"},
	services.CodeTokenSigning:       {fiber.StatusInternalServerError, "Token generation failed"},
}

// ErrorHandler is the single place where errors become HTTP responses.
// Internal causes are logged and never sent to the client.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := resolve(err)

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     resp.status,
			"request_id": c.Locals(middleware.RequestIDKey),
		})
		if oopsErr, ok := oops.AsOops(err); ok {
			entry = entry.WithField("context", oopsErr.Context())
		}
		if resp.status >= fiber.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		return c.Status(resp.status).JSON(fiber.Map{
			"error": resp.message,
		})
	}
}

func resolve(err error) errorResponse {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorResponse{fiberErr.Code, fiberErr.Message}
	}

	for code, resp := range codeResponses {
		if services.HasCode(err, code) {
			if resp.message == "" {
				resp.message = err.Error()
			}
			return resp
		}
	}
	return errorResponse{fiber.StatusInternalServerError, "Internal server error"}
}

// parseBody decodes the JSON request body into out.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return oops.Code(services.CodeInvalidInput).Errorf("No data provided")
	}
	if err := c.BodyParser(out); err != nil {
		return oops.Code(services.CodeInvalidInput).
			With("cause", err.Error()).
			Errorf("Invalid request body")
	}
	return nil
}
