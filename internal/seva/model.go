package seva

import (
	"time"
)

// Seva is a bookable ritual offering. Text fields carry an English and a
// Kannada variant; clients pick one by locale.
type Seva struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TitleEn       string    `gorm:"size:200" json:"titleEn"`
	TitleKn       string    `gorm:"size:200" json:"titleKn"`
	TempleNameEn  string    `gorm:"size:200" json:"templeNameEn"`
	TempleNameKn  string    `gorm:"size:200" json:"templeNameKn"`
	LocationEn    string    `gorm:"size:200" json:"locationEn"`
	LocationKn    string    `gorm:"size:200" json:"locationKn"`
	DescriptionEn string    `gorm:"type:text" json:"descriptionEn"`
	DescriptionKn string    `gorm:"type:text" json:"descriptionKn"`
	Price         float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Image         string    `gorm:"not null" json:"image"`
	Category      string    `gorm:"size:100;not null;index" json:"category"`
	Slug          string    `gorm:"size:220;index" json:"slug"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DisplayTitle is the title used in admin notifications.
func (s *Seva) DisplayTitle() string {
	if s == nil {
		return "Seva"
	}
	if s.TitleEn != "" {
		return s.TitleEn
	}
	if s.TitleKn != "" {
		return s.TitleKn
	}
	return "Seva"
}

// Suggested categories shown by the admin form. Category stays free text.
var SuggestedCategories = []string{"Pooja", "Abhisheka", "Homa", "Special"}
