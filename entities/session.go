package entities

import "github.com/google/uuid"

// Session identifies one household device. It carries no credentials.
type Session struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Notifications     bool      `json:"notifications"`
	RecipeSuggestions bool      `json:"recipe_suggestions"`
	DarkMode          bool      `json:"dark_mode"`
	Language          string    `gorm:"size:2" json:"language"`
	Timestamp
}
