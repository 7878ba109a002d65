package domain

import "time"

// Member is created once per activated registration.
type Member struct {
	ID             string
	UserID         string
	RegistrationID string
	MembershipType MembershipType
	JoinDate       time.Time
	ExpiryDate     time.Time
	Profile        Profile
	QRCode         string
	IsActive       bool
	CreatedAt      time.Time
}

// IsCurrent reports whether the membership covers now.
func (m Member) IsCurrent(now time.Time) bool {
	return m.IsActive && !now.After(m.ExpiryDate)
}
