package helper

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 30 * 24 * time.Hour

func secretKey() []byte {
	return []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
}

// GenerateToken signs the caller-supplied claims verbatim, adding only the
// 30-day expiry. The claim shape is not validated; clients conventionally
// include an "email" field, which is what the middleware reads back.
func GenerateToken(claims map[string]interface{}) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = jwt.NewNumericDate(time.Now().Add(tokenLifetime))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secretKey())
}

// ValidateToken checks signature and expiry and returns the decoded claims.
// The second return is a human-readable message, empty on success.
func ValidateToken(signedToken string) (jwt.MapClaims, string) {
	token, err := jwt.Parse(
		signedToken,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, fmt.Sprintf("token parsing error: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}

	return claims, ""
}

// EmailFromClaims extracts the identity claim the rest of the service keys on.
func EmailFromClaims(claims jwt.MapClaims) string {
	email, _ := claims["email"].(string)
	return email
}
