package handlers

import (
	"footballfinder/internal/metrics"
	"footballfinder/internal/middleware"
	"footballfinder/internal/models"
	"footballfinder/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GameHandler handles HTTP requests for games.
type GameHandler struct {
	gameService *services.GameService
	authService *services.AuthService
	metrics     *metrics.Metrics
	log         *logrus.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *services.GameService, authService *services.AuthService, m *metrics.Metrics, log *logrus.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		authService: authService,
		metrics:     m,
		log:         log,
	}
}

// RegisterRoutes registers the game routes. Listing is public; creating needs a valid token.
func (h *GameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/games")
	gameRoutes.Get("/", h.HandleGetGames)
	gameRoutes.Post("/", middleware.AuthRequired(h.authService, middleware.Collapsed, h.log), h.HandleCreateGame)
}

// HandleGetGames lists every game, latest date first.
func (h *GameHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.gameService.ListGames()
	if err != nil {
		return err
	}

	resp := make([]models.GameResponse, 0, len(games))
	for i := range games {
		resp = append(resp, games[i].ToResponse())
	}
	return c.JSON(resp)
}

// HandleCreateGame creates a game owned by the authenticated user.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var input services.CreateGameInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	game, err := h.gameService.CreateGame(input, middleware.CurrentUser(c))
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.GamesCreated.Inc()
	}
	h.log.WithFields(logrus.Fields{
		"game_id":    game.ID,
		"creator_id": game.CreatorID,
	}).Info("game created")
	return c.Status(fiber.StatusCreated).JSON(game.ToResponse())
}
