package handlers

import (
	"footballfinder/internal/metrics"
	"footballfinder/internal/middleware"
	"footballfinder/internal/models"
	"footballfinder/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	metrics     *metrics.Metrics
	log         *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, m *metrics.Metrics, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
		log:         log,
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", middleware.AuthRequired(h.authService, middleware.Detailed, h.log), h.HandleMe)
}

// HandleRegister creates a user and returns a token for it.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) (err error) {
	defer func() { h.record("register", err) }()

	var input services.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.authService.RegisterUser(input)
	if err != nil {
		return err
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return err
	}

	h.log.WithField("user_id", user.ID).Info("user registered")
	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

// HandleLogin checks credentials and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) (err error) {
	defer func() { h.record("login", err) }()

	var input services.LoginInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, token, err := h.authService.LoginUser(input)
	if err != nil {
		return err
	}

	h.log.WithField("user_id", user.ID).Info("user logged in")
	return c.JSON(AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

// HandleMe returns the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	h.record("me", nil)
	return c.JSON(user.ToResponse())
}

func (h *AuthHandler) record(event string, err error) {
	if h.metrics != nil {
		h.metrics.RecordAuth(event, err)
	}
}
