package model

import "time"

// EditableBlogInfo is the part of a blog post that admin writes replace.
// CreatedAt is accepted on create only (kept when supplied, else set to now).
type EditableBlogInfo struct {
	Title    string `gorm:"type:text" json:"title"`
	Excerpt  string `gorm:"type:varchar(1000)" json:"excerpt"`
	Content  string `gorm:"type:text" json:"content"`
	Category string `gorm:"type:text" json:"category"`
	Author   string `gorm:"type:text" json:"author"`
	ImageURL string `gorm:"column:image_url;type:text" json:"imageUrl"`
	ReadTime string `gorm:"column:read_time;type:text" json:"readTime"`
}

// Blog is gorm model for a blog post. Content may carry HTML or Markdown.
type Blog struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EditableBlogInfo
	CreatedAt time.Time `gorm:"type:timestamp;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updatedAt"`
}

// BlogRequest is the admin payload for creating or replacing a blog post.
type BlogRequest struct {
	EditableBlogInfo
	CreatedAt *time.Time `json:"createdAt"`
}
