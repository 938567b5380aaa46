package booking

import "github.com/sharath018/seva-booking-backend/middleware"

// GuestContact is the contact block a devotee submits with a booking.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}

// Attribution says who a booking belongs to and how to reach them.
type Attribution struct {
	UserID     *uint
	GuestName  string
	GuestEmail string
	GuestPhone string
}

// ResolveIdentity maps the caller onto booking ownership. A signed-in account
// wins over whatever guest details were submitted.
func ResolveIdentity(actor *middleware.AccessContext, guest GuestContact) Attribution {
	if actor == nil {
		return Attribution{
			GuestName:  guest.Name,
			GuestEmail: guest.Email,
			GuestPhone: guest.Phone,
		}
	}

	id := actor.UserID
	return Attribution{
		UserID:     &id,
		GuestName:  actor.Name,
		GuestEmail: actor.Email,
		GuestPhone: actor.Phone,
	}
}

// DisplayName is the name shown to admins for this booking: the account or
// guest name, then the devotee the seva is performed for, then "Guest".
func (a Attribution) DisplayName(devoteeName string) string {
	if a.GuestName != "" {
		return a.GuestName
	}
	if devoteeName != "" {
		return devoteeName
	}
	return "Guest"
}
