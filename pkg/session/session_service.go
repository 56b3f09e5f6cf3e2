package session

import (
	"EcoPanier/domain"
	"EcoPanier/entities"
	"EcoPanier/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SessionService interface {
		CreateSession(ctx context.Context) (domain.CreateSessionResponse, error)
		GetSettings(ctx context.Context, sessionID string) (domain.UserSettings, error)
		UpdateSettings(ctx context.Context, sessionID string, req domain.UpdateSettingsRequest) (domain.UserSettings, error)
	}

	sessionService struct {
		sessionRepository SessionRepository
		jwtService        jwt.JWTService
	}
)

func NewSessionService(sessionRepository SessionRepository, jwtService jwt.JWTService) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
	}
}

// CreateSession registers a new household with default settings and
// returns the token that identifies it on later requests.
func (s *sessionService) CreateSession(ctx context.Context) (domain.CreateSessionResponse, error) {
	settings := domain.DefaultUserSettings()
	session := &entities.Session{ID: uuid.New()}
	applySettings(session, settings)

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return domain.CreateSessionResponse{}, err
	}

	return domain.CreateSessionResponse{
		SessionID: session.ID.String(),
		Token:     s.jwtService.GenerateSessionToken(session.ID.String()),
		Settings:  settings,
	}, nil
}

func (s *sessionService) load(ctx context.Context, sessionID string) (*entities.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, domain.ErrParseUUID
	}
	session, err := s.sessionRepository.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSettings(ctx context.Context, sessionID string) (domain.UserSettings, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return toSettings(session), nil
}

// UpdateSettings changes only the fields present in req.
func (s *sessionService) UpdateSettings(ctx context.Context, sessionID string, req domain.UpdateSettingsRequest) (domain.UserSettings, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.UserSettings{}, err
	}

	settings := toSettings(session)
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}
	if req.RecipeSuggestions != nil {
		settings.RecipeSuggestions = *req.RecipeSuggestions
	}
	if req.DarkMode != nil {
		settings.DarkMode = *req.DarkMode
	}
	if req.Language != nil {
		switch *req.Language {
		case domain.LanguageFrench, domain.LanguageEnglish:
			settings.Language = *req.Language
		default:
			return domain.UserSettings{}, domain.NewValidationError("language", "oneof=fr en")
		}
	}

	applySettings(session, settings)
	if err := s.sessionRepository.UpdateSession(ctx, session); err != nil {
		return domain.UserSettings{}, err
	}
	return settings, nil
}

func applySettings(session *entities.Session, settings domain.UserSettings) {
	session.Notifications = settings.Notifications
	session.RecipeSuggestions = settings.RecipeSuggestions
	session.DarkMode = settings.DarkMode
	session.Language = settings.Language
}

func toSettings(session *entities.Session) domain.UserSettings {
	return domain.UserSettings{
		Notifications:     session.Notifications,
		RecipeSuggestions: session.RecipeSuggestions,
		DarkMode:          session.DarkMode,
		Language:          session.Language,
	}
}
