package domain

import "time"

// RegistrationWindow is how long a registration QR code can be activated.
const RegistrationWindow = 5 * 24 * time.Hour

type RegistrationStatus string

// Expired is never stored; see Registration.IsExpired.
const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationActivated RegistrationStatus = "activated"
)

// Registration is a pending claim to membership. Once activated it is never
// changed again.
type Registration struct {
	ID             string
	UserID         string
	Username       string
	MembershipType MembershipType
	DurationMonths int
	Price          int64

	// Profile is a copy of the user's profile at the time of issue.
	Profile Profile

	QRCode           string
	RegistrationDate time.Time
	ExpiryDate       time.Time
	Status           RegistrationStatus
	IsActive         bool

	// Set on activation only.
	ActivationDate *time.Time
	ActivatedBy    string
}

// IsExpired reports whether now is strictly after the expiry date.
func (r Registration) IsExpired(now time.Time) bool {
	return now.After(r.ExpiryDate)
}

func (r Registration) IsActivated() bool {
	return r.Status == RegistrationActivated
}

// IsActionable reports whether r can still be activated at now.
func (r Registration) IsActionable(now time.Time) bool {
	return r.Status == RegistrationPending && !r.IsExpired(now)
}
