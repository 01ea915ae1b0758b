package model

import "time"

var (
	// ApplicationStatusNew indicates that the application has not been reviewed yet
	ApplicationStatusNew = "NEW"
	// ApplicationStatusReviewing indicates that the application is being reviewed
	ApplicationStatusReviewing = "REVIEWING"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "REJECTED"
)

// Application represents a job application record. The referenced job must
// exist at submission time and the relation is never re-pointed afterward.
type Application struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`

	// JobID references Job.ID
	JobID uint `gorm:"not null;index;<-:create" json:"-"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job"`

	FullName    string `gorm:"type:text" json:"fullName"`
	Email       string `gorm:"type:text" json:"email"`
	Phone       string `gorm:"type:text" json:"phone"`
	ResumeURL   string `gorm:"type:text" json:"resumeUrl"`
	CoverLetter string `gorm:"type:text" json:"coverLetter"`

	Status    string    `gorm:"type:text;default:'NEW'" json:"status"`
	AppliedAt time.Time `gorm:"type:timestamp;<-:create" json:"appliedAt"`
}

// ApplicationRequest is the public submission payload.
type ApplicationRequest struct {
	JobID       uint   `json:"jobId" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
}

// StatusUpdateRequest is the admin payload for re-labelling an application.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW REVIEWING REJECTED"`
}
