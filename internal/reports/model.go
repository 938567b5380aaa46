package reports

import (
	"time"
)

const (
	// Booking-date windows for the sankalpa list
	DateRangeToday    = "today"
	DateRangeTomorrow = "tomorrow"
	DateRangeWeek     = "week"
	DateRangeMonth    = "month"
	DateRangeCustom   = "custom"

	// Report format constants
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// SankalpaRow is one line of the priest's sankalpa list.
type SankalpaRow struct {
	Reference    string    `json:"reference"`
	DevoteeName  string    `json:"devoteeName"`
	Gothram      string    `json:"gothram"`
	Rashi        string    `json:"rashi"`
	Nakshatra    string    `json:"nakshatra"`
	SevaTitle    string    `json:"sevaTitle"`
	BookingDate  time.Time `json:"bookingDate"`
	Count        int       `json:"count"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	Status       string    `json:"status"`
}

// SankalpaFilter narrows the list by booking date, seva and status. Nil
// bounds are open.
type SankalpaFilter struct {
	From   *time.Time
	To     *time.Time
	SevaID uint
	Status string
}

// Export is a rendered report ready to stream to the client.
type Export struct {
	Data     []byte
	Filename string
	MimeType string
}
