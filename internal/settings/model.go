package settings

import "time"

// singletonID is the primary key of the only settings row.
const singletonID = 1

// Settings has no column defaults. The first row is built from Defaults().
type Settings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	TempleName          string    `gorm:"size:200;not null" json:"templeName"`
	ContactEmail        string    `gorm:"size:150;not null" json:"contactEmail"`
	ContactPhone        string    `gorm:"size:30;not null" json:"contactPhone"`
	Address             string    `gorm:"type:text;not null" json:"address"`
	Website             string    `gorm:"size:200" json:"website"`
	Currency            string    `gorm:"size:10" json:"currency"`
	Timezone            string    `gorm:"size:50" json:"timezone"`
	RitualHours         string    `gorm:"size:100" json:"ritualHours"`
	AllowSameDayBooking bool      `gorm:"not null" json:"allowSameDayBooking"`
	NotifyDevotee       bool      `gorm:"not null" json:"notifyDevotee"`
	AdvanceBookingDays  int       `gorm:"not null" json:"advanceBookingDays"`
	CancellationAllowed bool      `gorm:"not null" json:"cancellationAllowed"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Defaults is what callers see before an admin has saved settings.
func Defaults() Settings {
	return Settings{
		TempleName:          "Shree Kshetra Ramtirtha",
		ContactEmail:        "contact@temple.com",
		ContactPhone:        "+91 99999 99999",
		Address:             "Temple Address",
		Currency:            "INR",
		Timezone:            "IST",
		RitualHours:         "06:00 AM - 08:00 PM",
		AllowSameDayBooking: true,
		NotifyDevotee:       true,
		AdvanceBookingDays:  30,
		CancellationAllowed: true,
	}
}
