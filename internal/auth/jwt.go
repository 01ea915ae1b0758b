// Package auth contain token issuing/validation and the login handler.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// SECRET_KEY signs every issued token. Loaded once at startup, never
// mutated afterward.
var SECRET_KEY = os.Getenv("SECRET_KEY")

// JwtIssuer is the issuer claim bound into every token this process signs.
const JwtIssuer = "sun-robotics-launchpad"

// AccessTokenDuration is the token lifetime. Expired tokens require a new
// login, there is no refresh mechanism.
const AccessTokenDuration = 24 * time.Hour

// GenerateStandardToken issues a signed access token for the given user id
// with the standard issuer and lifetime.
func GenerateStandardToken(userID uuid.UUID) (string, error) {
	return GenerateTokenWithDuration(userID, AccessTokenDuration, JwtIssuer)
}

// GenerateTokenWithDuration issues a signed token with an explicit lifetime
// and issuer. Used directly by tests to forge expired or foreign tokens.
func GenerateTokenWithDuration(userID uuid.UUID, duration time.Duration, issuer string) (string, error) {

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signedToken, err := accessToken.SignedString([]byte(SECRET_KEY))
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, nil
}

// ValidatedToken parses and verifies an encoded token, checking the signing
// method and signature. Expiry failures surface as jwt.ErrTokenExpired.
func ValidatedToken(encodedToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodedToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(SECRET_KEY), nil
	})
}
