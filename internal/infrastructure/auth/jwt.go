package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pactum/internal/domain/account"
	"pactum/internal/shared/authorization"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

type Claims struct {
	AccountSID string                 `json:"account_sid"`
	SessionID  string                 `json:"session_id"`
	Role       authorization.UserRole `json:"role"`
	EntityID   uint                   `json:"entity_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Issue mints an access token for the account. Satisfies the login use
// case's TokenIssuer port.
func (s *JWTService) Issue(a *account.Account) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	sessionID, err := id.Generate(id.DefaultLength)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session id: %w", err)
	}

	claims := &Claims{
		AccountSID: a.SID(),
		SessionID:  sessionID,
		Role:       a.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if a.EntityID() != nil {
		claims.EntityID = *a.EntityID()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
