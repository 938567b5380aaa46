package notification

import "time"

const (
	TypeBooking = "booking"
	TypeSystem  = "system"
)

// Notification is an admin-facing event record. Only IsRead ever changes.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:20;not null;default:booking;index" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	BookingID *uint     `gorm:"index" json:"bookingId,omitempty"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"isRead"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// BookingConfirmation is what the devotee email needs to know about a booking.
type BookingConfirmation struct {
	Email       string
	Reference   string
	DevoteeName string
	SevaTitle   string
	BookingDate time.Time
	TotalAmount float64
}
