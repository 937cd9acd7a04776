package model

import "time"

// SiteSettings is the singleton row holding the editable chrome of the public
// site: hero section, about copy, and contact/footer details.
type SiteSettings struct {
	ID uint `json:"id" gorm:"primaryKey"`

	HeroTitle    string `json:"hero_title" gorm:"size:255"`
	HeroSubtitle string `json:"hero_subtitle" gorm:"size:512"`
	HeroImage    string `json:"hero_image" gorm:"size:512"`

	AboutTitle string `json:"about_title" gorm:"size:255"`
	AboutBody  string `json:"about_body" gorm:"type:text"`

	ContactEmail string `json:"contact_email" gorm:"size:255"`
	ContactPhone string `json:"contact_phone" gorm:"size:50"`
	Address      string `json:"address" gorm:"size:512"`
	FooterText   string `json:"footer_text" gorm:"size:512"`
	Instagram    string `json:"instagram" gorm:"size:255"`
	Facebook     string `json:"facebook" gorm:"size:255"`

	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsRowID pins the singleton to a fixed primary key.
const SettingsRowID uint = 1
