// Command-line tool to create an admin user with random credentials.
// The generated username and password are printed once; store them safely.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/database"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/model"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/utilities"
)

// generateRandomString creates a random hex string of n bytes
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(db *gorm.DB) string {
	for {
		username := "admin_" + generateRandomString(4)
		var count int64
		db.Model(&model.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return username
		}
		// If username exists, loop again
	}
}

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	username := generateUniqueUsername(db.DB)
	password := generateRandomString(8)

	utilities.CreateAdmin(password, username, db.DB)

	fmt.Println("Admin user created")
	fmt.Println("Username:", username)
	fmt.Println("Password:", password)
}
