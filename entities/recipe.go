package entities

// Recipe rows hold the built-in catalog (empty SessionID) and the recipes
// generated for each session. Ingredients and Instructions are newline-joined.
type Recipe struct {
	ID                   string `gorm:"primaryKey" json:"id"`
	SessionID            string `gorm:"primaryKey;size:36" json:"session_id,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description" gorm:"type:text"`
	ImageURL             string `json:"image_url,omitempty"`
	PrepTimeMinutes      int    `json:"prep_time_minutes"`
	Servings             int    `json:"servings"`
	DifficultyLevel      string `json:"difficulty_level"`
	Ingredients          string `json:"ingredients" gorm:"type:text"`
	Instructions         string `json:"instructions" gorm:"type:text"`
	AvailableIngredients int    `json:"available_ingredients"`
	TotalIngredients     int    `json:"total_ingredients"`
	IsSuggested          bool   `json:"is_suggested"`
	Source               string `json:"source"`
	Position             int    `json:"position"`
	Timestamp
}
