package utilities

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns an error when the header is absent or not a Bearer scheme.
func ExtractBearerToken(c *gin.Context) (string, error) {

	const bearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if !strings.HasPrefix(authHeader, bearerSchema) || len(authHeader) <= len(bearerSchema) {
		return "", fmt.Errorf("Invalid authorization header")
	}

	return authHeader[len(bearerSchema):], nil
}
