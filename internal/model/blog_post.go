package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is an article on the studio blog.
type BlogPost struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Excerpt     string     `json:"excerpt" gorm:"size:512"`
	Content     string     `json:"content" gorm:"type:text"`
	CoverImage  string     `json:"cover_image" gorm:"size:512"`
	AuthorName  string     `json:"author_name" gorm:"size:255"`
	Published   bool       `json:"published" gorm:"default:false;index"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
