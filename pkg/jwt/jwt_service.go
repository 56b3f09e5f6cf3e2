package jwt

import (
	"EcoPanier/domain"
	"EcoPanier/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer          = "ECOPANIER"
	DefaultTokenTTL = 30 * 24 * time.Hour
)

type (
	JWTService interface {
		GenerateSessionToken(sessionID string) string
		ValidateSessionToken(token string) (*jwt.Token, error)
		GetSessionIDByToken(token string) (string, error)
	}

	jwtSessionClaim struct {
		SessionID string `json:"session_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func getSecretKey() string {
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		log.Warn("JWT_SECRET is not set, session tokens are signed with an empty key")
	}
	return secretKey
}

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(getSecretKey(), DefaultTokenTTL)
}

func NewJWTServiceWithSecret(secretKey string, ttl time.Duration) JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		ttl:       ttl,
	}
}

func (j *jwtService) GenerateSessionToken(sessionID string) string {
	claims := jwtSessionClaim{
		sessionID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Errorf("failed to sign session token: %v", err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateSessionToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
}

func (j *jwtService) GetSessionIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateSessionToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtSessionClaim)
	if claims.Issuer != j.issuer || claims.SessionID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.SessionID, nil
}
