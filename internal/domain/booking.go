package domain

// Booking is a direct booking request for a catalog destination.
// Bookings are not persisted anywhere and carry no email address: submitting
// one only triggers the internal notification, and the sales team follows up
// by phone.
type Booking struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	NumberOfPeople int    `json:"numberOfPeople"`
	StartDate      string `json:"startDate"`
	Destination    string `json:"destination"`
	Message        string `json:"message,omitempty"`
}
