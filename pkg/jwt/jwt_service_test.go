package jwt

import (
	"EcoPanier/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("secret", time.Hour)

	token := svc.GenerateSessionToken("6f1c7d3e-0000-4000-8000-000000000001")
	require.NotEmpty(t, token)

	id, err := svc.GetSessionIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6f1c7d3e-0000-4000-8000-000000000001", id)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	token := NewJWTServiceWithSecret("other", time.Hour).GenerateSessionToken("abc")

	_, err := NewJWTServiceWithSecret("secret", time.Hour).GetSessionIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	svc := &jwtService{secretKey: "secret", issuer: issuer, ttl: -time.Minute}

	_, err := svc.GetSessionIDByToken(svc.GenerateSessionToken("abc"))
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTServiceWithSecret("secret", time.Hour).GetSessionIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
