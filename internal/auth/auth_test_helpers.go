package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/database"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	username string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["token"] == nil {
		return "", fmt.Errorf("login Failed: no token in response: %s", rec.Body.String())
	}
	return resp["token"].(string), nil
}
