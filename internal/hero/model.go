package hero

import "time"

// Slide is one homepage banner entry. Slides render in ascending Order.
type Slide struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Image      string    `gorm:"not null" json:"image"`
	TitleEn    string    `gorm:"size:200" json:"titleEn"`
	TitleKn    string    `gorm:"size:200" json:"titleKn"`
	SubtitleEn string    `gorm:"size:300" json:"subtitleEn"`
	SubtitleKn string    `gorm:"size:300" json:"subtitleKn"`
	LocationEn string    `gorm:"size:200" json:"locationEn"`
	LocationKn string    `gorm:"size:200" json:"locationKn"`
	Order      int       `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Slide) TableName() string {
	return "hero_slides"
}
