package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Booking is one seva reservation. Guest fields always hold the contact
// details, copied from the account when the devotee was signed in.
type Booking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"size:20;uniqueIndex" json:"reference"`
	UserID      *uint     `gorm:"index" json:"userId,omitempty"`
	GuestName   string    `gorm:"size:150" json:"guestName"`
	GuestEmail  string    `gorm:"size:150" json:"guestEmail"`
	GuestPhone  string    `gorm:"size:20;index" json:"guestPhone"`
	SevaID      uint      `gorm:"not null;index" json:"sevaId"`
	DevoteeName string    `gorm:"size:150;not null" json:"devoteeName"`
	Gothram     string    `gorm:"size:100" json:"gothram"`
	Rashi       string    `gorm:"size:50" json:"rashi"`
	Nakshatra   string    `gorm:"size:50" json:"nakshatra"`
	BookingDate time.Time `gorm:"not null" json:"bookingDate"`
	BookingType string    `gorm:"size:20;default:individual" json:"bookingType"`
	Count       int       `gorm:"not null;default:1" json:"count"`
	TotalAmount float64   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	IsPaid      bool      `gorm:"not null;default:false" json:"isPaid"`
	Status      string    `gorm:"size:20;not null;default:Pending" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SevaSummary is the slice of a seva shown next to a booking.
type SevaSummary struct {
	ID           uint   `json:"id"`
	TitleEn      string `json:"titleEn"`
	TitleKn      string `json:"titleKn"`
	TempleNameEn string `json:"templeNameEn"`
	TempleNameKn string `json:"templeNameKn"`
	LocationEn   string `json:"locationEn"`
	LocationKn   string `json:"locationKn"`
	Image        string `json:"image,omitempty"`
}

// OwnerSummary identifies the account that placed a booking.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingView is a booking with its seva and, for admins, its owner.
type BookingView struct {
	Booking
	Seva *SevaSummary  `json:"seva,omitempty"`
	User *OwnerSummary `json:"user,omitempty"`
}

// bookingRow is the flat scan target of the joined listing queries.
type bookingRow struct {
	Booking
	SevaTitleEn      string
	SevaTitleKn      string
	SevaTempleNameEn string
	SevaTempleNameKn string
	SevaLocationEn   string
	SevaLocationKn   string
	SevaImage        string
	OwnerName        string
	OwnerEmail       string
}

func (r bookingRow) view(withImage, withOwner bool) BookingView {
	v := BookingView{
		Booking: r.Booking,
		Seva: &SevaSummary{
			ID:           r.SevaID,
			TitleEn:      r.SevaTitleEn,
			TitleKn:      r.SevaTitleKn,
			TempleNameEn: r.SevaTempleNameEn,
			TempleNameKn: r.SevaTempleNameKn,
			LocationEn:   r.SevaLocationEn,
			LocationKn:   r.SevaLocationKn,
		},
	}
	if withImage {
		v.Seva.Image = r.SevaImage
	}
	if withOwner && r.UserID != nil {
		v.User = &OwnerSummary{ID: *r.UserID, Name: r.OwnerName, Email: r.OwnerEmail}
	}
	return v
}

// SevaTitle mirrors seva.DisplayTitle for a joined row.
func (v BookingView) SevaTitle() string {
	if v.Seva == nil {
		return "Seva"
	}
	if v.Seva.TitleEn != "" {
		return v.Seva.TitleEn
	}
	if v.Seva.TitleKn != "" {
		return v.Seva.TitleKn
	}
	return "Seva"
}

// NewReference returns a short human-readable booking code like SB-1A2B3C4D.
func NewReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SB-" + strings.ToUpper(id[:8])
}
