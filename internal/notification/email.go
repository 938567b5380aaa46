package notification

import (
	"fmt"
	"strings"
)

// EmailSender delivers a single plain-text email.
type EmailSender interface {
	Send(to, subject, body string) error
}

func confirmationSubject(c BookingConfirmation) string {
	return fmt.Sprintf("Seva booking confirmed: %s (%s)", c.SevaTitle, c.Reference)
}

func confirmationBody(templeName string, c BookingConfirmation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Namaste %s,\n\n", c.DevoteeName)
	fmt.Fprintf(&b, "Your booking for %s at %s is confirmed.\n\n", c.SevaTitle, templeName)
	fmt.Fprintf(&b, "Booking reference: %s\n", c.Reference)
	fmt.Fprintf(&b, "Seva date: %s\n", c.BookingDate.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Amount: %.2f\n\n", c.TotalAmount)
	b.WriteString("Use your phone number on the Track Booking page to see this booking again.\n")
	return b.String()
}
