package authenticating

//go:generate mockgen -source=service.go -destination=mocks/authenticator_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const tokenTTL = 24 * time.Hour

// Authenticator valida os tokens das rotas administrativas.
// Os tokens são emitidos fora da API; GenerateToken existe para scripts e testes.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(userID int, userName string, roleID int) (string, error)
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) GenerateToken(userID int, userName string, roleID int) (string, error) {
	if s.cfg.Secret == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := domain.Claims{
		UserID:     userID,
		UserName:   userName,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, expiredToken(err)
		}
		return nil, invalidToken(err)
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, invalidToken(nil)
}
