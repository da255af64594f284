package repositories_test

import (
	"io"
	"testing"
	"time"

	"footballfinder/internal/database"
	"footballfinder/internal/models"
	"footballfinder/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupDB opens a private in-memory SQLite database with the schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared", log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, repo *repositories.GORMUserRepository, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "hash", Name: name}
	require.NoError(t, repo.Create(user))
	return user
}

func TestGORMUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	user := createUser(t, repo, "a@x.com", "Alice")
	assert.NotZero(t, user.ID)

	byEmail, err := repo.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.GetByEmail("nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(user.ID + 100)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_DuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUserRepository(setupDB(t))

	createUser(t, repo, "a@x.com", "")
	err := repo.Create(&models.User{Email: "a@x.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestGORMGameRepository_CreateLoadsCreator(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	games := repositories.NewGORMGameRepository(db)

	creator := createUser(t, users, "c@x.com", "Casey")
	game := &models.Game{
		Title:      "Sunday kickabout",
		Location:   "Park",
		Latitude:   51.5,
		Longitude:  -0.1,
		Date:       time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		MaxPlayers: 10,
		SkillLevel: models.DefaultSkillLevel,
		CreatorID:  creator.ID,
	}
	require.NoError(t, games.Create(game))
	assert.NotZero(t, game.ID)
	assert.Equal(t, creator.ID, game.Creator.ID)
	assert.Equal(t, "Casey", game.Creator.Name)

	all, err := games.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Casey", all[0].Creator.Name)
	assert.True(t, game.Date.Equal(all[0].Date))
}

func TestGORMGameRepository_CreateWithUnknownCreator(t *testing.T) {
	db := setupDB(t)
	games := repositories.NewGORMGameRepository(db)

	err := games.Create(&models.Game{
		Title:      "Ghost game",
		Location:   "Nowhere",
		Date:       time.Now().UTC(),
		MaxPlayers: 10,
		CreatorID:  999,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Game{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMGameRepository_GetAllOrdering(t *testing.T) {
	db := setupDB(t)
	users := repositories.NewGORMUserRepository(db)
	games := repositories.NewGORMGameRepository(db)

	creator := createUser(t, users, "c@x.com", "")
	base := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	for _, g := range []struct {
		title string
		date  time.Time
	}{
		{"early", base.Add(-48 * time.Hour)},
		{"late", base.Add(48 * time.Hour)},
		{"tie first", base},
		{"tie second", base},
	} {
		require.NoError(t, games.Create(&models.Game{
			Title:      g.title,
			Location:   "Park",
			Date:       g.date,
			MaxPlayers: 10,
			CreatorID:  creator.ID,
		}))
	}

	all, err := games.GetAll()
	require.NoError(t, err)

	titles := make([]string, 0, len(all))
	for _, g := range all {
		titles = append(titles, g.Title)
	}
	assert.Equal(t, []string{"late", "tie first", "tie second", "early"}, titles)
}

func TestGORMGameRepository_GetAllEmpty(t *testing.T) {
	games := repositories.NewGORMGameRepository(setupDB(t))

	all, err := games.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
