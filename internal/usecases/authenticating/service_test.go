package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo-de-teste"})

	token, err := service.GenerateToken(7, "Ana", 1)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo-de-teste"})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)

	otherSecret, err := NewService(config.Auth{Secret: "outro"}).GenerateToken(1, "Ana", 1)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "token malformado", token: "abc.def", wantErr: ErrInvalidToken},
		{name: "assinatura de outro segredo", token: otherSecret, wantErr: ErrInvalidToken},
		{name: "token expirado", token: expiredToken, wantErr: ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)

			var authErr *AuthError
			assert.ErrorAs(t, err, &authErr)
			assert.NotEmpty(t, authErr.Code)
		})
	}
}

func TestService_MissingSecret(t *testing.T) {
	service := NewService(config.Auth{})

	_, err := service.GenerateToken(1, "Ana", 1)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = service.ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
