package domain

var (
	MessageSuccessCreateSession  = "session created successfully"
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"

	MessageFailedCreateSession  = "failed to create session"
	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"
)

const (
	LanguageFrench  = "fr"
	LanguageEnglish = "en"
)

type (
	UserSettings struct {
		Notifications     bool   `json:"notifications"`
		RecipeSuggestions bool   `json:"recipe_suggestions"`
		DarkMode          bool   `json:"dark_mode"`
		Language          string `json:"language"`
	}

	UpdateSettingsRequest struct {
		Notifications     *bool   `json:"notifications"`
		RecipeSuggestions *bool   `json:"recipe_suggestions"`
		DarkMode          *bool   `json:"dark_mode"`
		Language          *string `json:"language" validate:"omitempty,oneof=fr en"`
	}

	CreateSessionResponse struct {
		SessionID string       `json:"session_id"`
		Token     string       `json:"token"`
		Settings  UserSettings `json:"settings"`
	}
)

func DefaultUserSettings() UserSettings {
	return UserSettings{
		Notifications:     true,
		RecipeSuggestions: true,
		DarkMode:          false,
		Language:          LanguageFrench,
	}
}
