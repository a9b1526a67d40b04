package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a locally issued session token.
// The token binds only the identity provider's subject id; there is no
// server-side session record and no revocation list.
type SessionClaims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints an HS256-signed session token for the
// given provider subject id.
func GenerateSessionToken(uid, secretKey string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateSessionToken checks signature and expiry. There is no other
// validation: a structurally valid, unexpired token is accepted.
func ValidateSessionToken(tokenString, secretKey string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
