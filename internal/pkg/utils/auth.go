package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pavelnovac/rcahub/internal/pkg/constants"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried by admin tokens.
type AuthTokenWrapper struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

func signingKey() []byte {
	return []byte(viper.GetString(constants.ViperJWTKey))
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.IssuedAt = time.Now().Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString(signingKey())
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func ParseAuthToken(tokenStr string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenStr, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	return wrapper, nil
}
