package auth

import (
	"time"

	"careconnect_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller identity a credential resolves to.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// Verifier turns a presented credential into an Identity. The core depends
// on this interface only; how tokens are issued is a separate concern.
type Verifier interface {
	Verify(token string) (*Identity, error)
}

// Claims carried by access tokens.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed JWTs.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenService(signingKey string, ttlMinutes int) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        time.Duration(ttlMinutes) * time.Minute,
	}
}

func (s *TokenService) Generate(userID uint, email, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.signingKey)
}

// Verify implements Verifier.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
