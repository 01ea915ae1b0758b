package model

import "time"

// EditableJobInfo is the part of a job posting that admins can set on create
// and replace wholesale on update. Active is a pointer so an omitted field
// can fall back to the default (true) instead of false.
type EditableJobInfo struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Active       *bool  `json:"active"`
}

// Job is gorm model for a career opening. Public listings only show active
// jobs; admins see everything.
type Job struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Title        string    `gorm:"type:text" json:"title"`
	Department   string    `gorm:"type:text" json:"department"`
	Location     string    `gorm:"type:text" json:"location"`
	Type         string    `gorm:"type:text" json:"type"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Active       bool      `gorm:"type:boolean" json:"active"`
	CreatedAt    time.Time `gorm:"type:timestamp;<-:create" json:"createdAt"`
}

// ApplyEditable copies every editable field onto the job. An absent Active
// defaults to true on create and on full replace alike.
func (j *Job) ApplyEditable(info EditableJobInfo) {
	j.Title = info.Title
	j.Department = info.Department
	j.Location = info.Location
	j.Type = info.Type
	j.Description = info.Description
	j.Requirements = info.Requirements
	if info.Active != nil {
		j.Active = *info.Active
	} else {
		j.Active = true
	}
}
