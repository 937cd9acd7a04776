package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryImage is a single image in the inspiration gallery.
type GalleryImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255"`
	ImageURL  string    `json:"image_url" gorm:"size:512;not null"`
	Category  string    `json:"category" gorm:"size:100;index"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Quote     string    `json:"quote" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"default:5"`
	Photo     string    `json:"photo" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Offering is one of the studio's services (consultation, full design, styling).
type Offering struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Summary   string    `json:"summary" gorm:"type:text"`
	Icon      string    `json:"icon" gorm:"size:255"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Offering) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Transformation is a before/after showcase pair.
type Transformation struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	BeforeImage string    `json:"before_image" gorm:"size:512;not null"`
	AfterImage  string    `json:"after_image" gorm:"size:512;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Transformation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Inquiry is a captured contact-form submission.
type Inquiry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:50"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Handled   bool      `json:"handled" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
