package utility

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/GreenD94/ladingburger-sub002/internal/common"
)

// CreateToken signs a session token for the given admin id, valid for ttl.
func CreateToken(secret string, adminID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		Issuer:    "saborea",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "no se pudo firmar el token", common.StatusInternalServerError, err.Error())
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the claims. Any
// failure maps into the token error taxonomy so the middleware can fail
// closed with a uniform response.
func ParseToken(secret string, tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
