package repositories

import (
	"errors"
	"fmt"

	"footballfinder/internal/models"

	"gorm.io/gorm"
)

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{
		db: db,
	}
}

// GetAll retrieves all games ordered by date descending. Games sharing a date keep insertion order.
func (r *GORMGameRepository) GetAll() ([]models.Game, error) {
	games := []models.Game{}
	err := r.db.Preload("Creator").
		Order("date DESC").
		Order("id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	return games, nil
}

// Create inserts the game and loads its creator inside a single transaction.
// If the creator does not exist nothing is stored.
func (r *GORMGameRepository) Create(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var creator models.User
		if err := tx.First(&creator, "id = ?", game.CreatorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("creator with ID %d: %w", game.CreatorID, ErrNotFound)
			}
			return fmt.Errorf("failed to load creator %d: %w", game.CreatorID, err)
		}

		if err := tx.Omit("Creator").Create(game).Error; err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}
		game.Creator = creator
		return nil
	})
}
