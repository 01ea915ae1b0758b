package model

import "time"

// ContactMessage represents a message submitted through the public contact
// form. Only the read flag is mutable after submission.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Company   string    `gorm:"type:text" json:"company"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Subject   string    `gorm:"type:text" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Read      bool      `gorm:"column:is_read;type:boolean;default:false" json:"read"`
	CreatedAt time.Time `gorm:"type:timestamp;<-:create" json:"createdAt"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
