package repositories

import "footballfinder/internal/models"

// GameRepository defines the interface for game data access.
type GameRepository interface {
	// GetAll returns every game, latest scheduled date first, with its creator loaded.
	GetAll() ([]models.Game, error)
	// Create stores the game and reloads it with its creator.
	Create(game *models.Game) error
}
