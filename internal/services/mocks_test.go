package services_test

import (
	"io"

	"footballfinder/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockGameRepository is a mock implementation of repositories.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) GetAll() ([]models.Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Game), args.Error(1)
}

func (m *MockGameRepository) Create(game *models.Game) error {
	args := m.Called(game)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.GameEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishGameCreated(event models.GameCreatedEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
