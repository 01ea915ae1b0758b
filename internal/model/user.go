// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only privileged role. The column stays free-form for
// future roles but nothing branches on other values yet.
var RoleAdmin = "admin"

// User is gorm model for an authenticatable account. Accounts are created
// out-of-band (startup bootstrap or cmd/create-admin), never through the API.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"createdAt"`
}
