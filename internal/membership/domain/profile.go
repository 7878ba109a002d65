package domain

import "strings"

// Profile is the personal information a user keeps on file. Registrations
// and members hold copies of it, never references.
type Profile struct {
	FullName              string
	Email                 string
	Phone                 string
	Address               string
	Gender                string
	DateOfBirth           string // YYYY-MM-DD
	EmergencyContactName  string
	EmergencyContactPhone string
	MedicalNotes          string
}

// DisplayName returns the full name, or fallback when it is blank.
func (p Profile) DisplayName(fallback string) string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	return fallback
}
