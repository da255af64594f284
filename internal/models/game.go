package models

import "time"

// DefaultSkillLevel is used when a game is created without a skill level.
const DefaultSkillLevel = "All levels"

// Game is a scheduled pickup game created by a user.
type Game struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"type:varchar(200);not null"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	MaxPlayers  int       `json:"max_players" gorm:"not null"`
	SkillLevel  string    `json:"skill_level" gorm:"type:varchar(50)"`
	CreatorID   uint      `json:"creator_id" gorm:"not null;index"`
	Creator     User      `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the database table name for the Game model.
func (Game) TableName() string {
	return "games"
}

// CreatorSummary is the creator data denormalized into every game response.
type CreatorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GameResponse is the wire shape of a game.
type GameResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Date        string         `json:"date"`
	MaxPlayers  int            `json:"max_players"`
	SkillLevel  string         `json:"skill_level"`
	Creator     CreatorSummary `json:"creator"`
}

// ToResponse flattens the game and its preloaded creator.
func (g *Game) ToResponse() GameResponse {
	return GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Location:    g.Location,
		Latitude:    g.Latitude,
		Longitude:   g.Longitude,
		Date:        g.Date.UTC().Format(time.RFC3339),
		MaxPlayers:  g.MaxPlayers,
		SkillLevel:  g.SkillLevel,
		Creator: CreatorSummary{
			ID:   g.Creator.ID,
			Name: g.Creator.Name,
		},
	}
}

// GameCreatedEvent is published after a game is stored.
type GameCreatedEvent struct {
	GameID     uint      `json:"game_id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Date       time.Time `json:"date"`
	MaxPlayers int       `json:"max_players"`
	SkillLevel string    `json:"skill_level"`
	CreatorID  uint      `json:"creator_id"`
}
