package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/domain"
	"github.com/vfg2006/retail-sales-insights-api/pkg/apiErrors"
)

const tokenIssuer = "retail-sales-insights-api"

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	IssueToken(subject string, roleID int) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service emite e valida tokens sem consultar nenhum armazenamento de usuários
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secret: []byte(cfg.Auth.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken gera um JWT HS256 para o sujeito e perfil informados
func (s *Service) IssueToken(subject string, roleID int) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Sujeito do token é obrigatório")
	}

	if !domain.IsKnownRole(roleID) {
		return "", NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidRequest, fmt.Sprintf("role_id=%d", roleID))
	}

	if len(s.secret) == 0 {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET vazio")
	}

	now := s.now()
	claims := domain.Claims{
		UserSubject: subject,
		UserRoleID:  roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "erro ao assinar token")
	}

	return signed, nil
}

// ValidateToken verifica assinatura, expiração e perfil do token
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET vazio")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		logrus.WithError(err).Debug("Token rejeitado")
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, errors.Cause(err).Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if !domain.IsKnownRole(claims.UserRoleID) {
		return nil, NewAuthError(ErrUnknownRole, apiErrors.ErrInvalidToken, fmt.Sprintf("role_id=%d", claims.UserRoleID))
	}

	return claims, nil
}
