package services

import (
	"errors"

	"footballfinder/internal/models"
	"footballfinder/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// CreateGameInput is the create-game payload. Pointer fields distinguish an absent key from a zero value.
// Field order decides which missing field is reported first.
type CreateGameInput struct {
	Title       *string  `json:"title" validate:"required"`
	Location    *string  `json:"location" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Date        *string  `json:"date" validate:"required"`
	MaxPlayers  *int     `json:"max_players" validate:"required"`
	Description *string  `json:"description"`
	SkillLevel  *string  `json:"skill_level"`
}

// GameEventPublisher announces stored games to other consumers.
type GameEventPublisher interface {
	PublishGameCreated(event models.GameCreatedEvent) error
}

// GameService handles business logic related to games.
type GameService struct {
	repo      repositories.GameRepository
	publisher GameEventPublisher
	log       *logrus.Logger
	validate  *validator.Validate
}

// NewGameService creates a new GameService. publisher may be nil.
func NewGameService(repo repositories.GameRepository, publisher GameEventPublisher, log *logrus.Logger) *GameService {
	return &GameService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		validate:  newValidator(),
	}
}

// ListGames returns all games, latest date first.
func (s *GameService) ListGames() ([]models.Game, error) {
	games, err := s.repo.GetAll()
	if err != nil {
		return nil, oops.Wrapf(err, "failed to list games")
	}
	return games, nil
}

// CreateGame validates input and stores a game owned by creator.
func (s *GameService) CreateGame(input CreateGameInput, creator *models.User) (*models.Game, error) {
	if creator == nil {
		return nil, oops.Code(CodeUnauthenticated).Errorf("Authentication required")
	}
	if err := validatePresence(s.validate, input); err != nil {
		return nil, err
	}

	date, err := ParseGameDate(*input.Date)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		Title:      *input.Title,
		Location:   *input.Location,
		Latitude:   *input.Latitude,
		Longitude:  *input.Longitude,
		Date:       date,
		MaxPlayers: *input.MaxPlayers,
		SkillLevel: models.DefaultSkillLevel,
		CreatorID:  creator.ID,
	}
	if input.Description != nil {
		game.Description = *input.Description
	}
	if input.SkillLevel != nil {
		game.SkillLevel = *input.SkillLevel
	}

	if err := s.repo.Create(game); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, oops.Code(CodeUnauthenticated).
				With("creator_id", creator.ID).
				Wrapf(err, "Authentication required")
		}
		return nil, oops.With("creator_id", creator.ID).Wrapf(err, "failed to create game")
	}

	s.announce(game)
	return game, nil
}

// announce publishes a game.created event. Failures are logged; the game is already stored.
func (s *GameService) announce(game *models.Game) {
	if s.publisher == nil {
		return
	}
	event := models.GameCreatedEvent{
		GameID:     game.ID,
		Title:      game.Title,
		Location:   game.Location,
		Latitude:   game.Latitude,
		Longitude:  game.Longitude,
		Date:       game.Date,
		MaxPlayers: game.MaxPlayers,
		SkillLevel: game.SkillLevel,
		CreatorID:  game.CreatorID,
	}
	if err := s.publisher.PublishGameCreated(event); err != nil {
		s.log.WithError(err).WithField("game_id", game.ID).Warn("failed to publish game created event")
	}
}
