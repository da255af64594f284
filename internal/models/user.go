package models

import "time"

// User represents a registered player.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(120);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(256);not null"` // bcrypt hash, never the password
	Name         string    `json:"name" gorm:"type:varchar(100);not null;default:''"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	Games        []Game    `json:"-" gorm:"foreignKey:CreatorID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// UserResponse is the public view of a user returned by the auth endpoints.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ToResponse strips everything but the public fields.
func (u *User) ToResponse() UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
