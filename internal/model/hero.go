package model

import "time"

// Hero is the second principal kind. Heroes authenticate against
// /auth_hero/token with their own name and password; only admins create
// them and assign their team.
type Hero struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Age          *int      `json:"age"`
	Power        string    `json:"power" gorm:"size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	TeamID       *uint     `json:"team_id" gorm:"index"`
	Team         *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
