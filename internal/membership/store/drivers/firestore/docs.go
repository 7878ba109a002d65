package firestore

import (
	"time"

	"github.com/lubana/membership/internal/membership/domain"
)

type profileDoc struct {
	FullName              string `firestore:"full_name"`
	Email                 string `firestore:"email"`
	Phone                 string `firestore:"phone"`
	Address               string `firestore:"address"`
	Gender                string `firestore:"gender"`
	DateOfBirth           string `firestore:"date_of_birth"`
	EmergencyContactName  string `firestore:"emergency_contact_name"`
	EmergencyContactPhone string `firestore:"emergency_contact_phone"`
	MedicalNotes          string `firestore:"medical_notes"`
}

func toProfileDoc(p domain.Profile) profileDoc {
	return profileDoc(p)
}

func (d profileDoc) domain() domain.Profile {
	return domain.Profile(d)
}

type userDoc struct {
	ID           string     `firestore:"id"`
	Username     string     `firestore:"username"`
	PasswordHash string     `firestore:"password_hash"`
	Role         string     `firestore:"role"`
	Profile      profileDoc `firestore:"profile"`
	CreatedAt    time.Time  `firestore:"created_at"`
	UpdatedAt    time.Time  `firestore:"updated_at"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Profile:      toProfileDoc(u.Profile),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) domain() domain.User {
	return domain.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		Profile:      d.Profile.domain(),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

// usernameDoc reserves a username; its document id is the username.
type usernameDoc struct {
	UserID string `firestore:"user_id"`
}

type registrationDoc struct {
	ID               string     `firestore:"id"`
	UserID           string     `firestore:"user_id"`
	Username         string     `firestore:"username"`
	MembershipType   string     `firestore:"membership_type"`
	DurationMonths   int        `firestore:"duration_months"`
	Price            int64      `firestore:"price"`
	Profile          profileDoc `firestore:"profile"`
	QRCode           string     `firestore:"qr_code"`
	RegistrationDate time.Time  `firestore:"registration_date"`
	ExpiryDate       time.Time  `firestore:"expiry_date"`
	Status           string     `firestore:"status"`
	IsActive         bool       `firestore:"is_active"`
	ActivationDate   *time.Time `firestore:"activation_date"`
	ActivatedBy      string     `firestore:"activated_by"`
}

func toRegistrationDoc(r domain.Registration) registrationDoc {
	return registrationDoc{
		ID:               r.ID,
		UserID:           r.UserID,
		Username:         r.Username,
		MembershipType:   string(r.MembershipType),
		DurationMonths:   r.DurationMonths,
		Price:            r.Price,
		Profile:          toProfileDoc(r.Profile),
		QRCode:           r.QRCode,
		RegistrationDate: r.RegistrationDate,
		ExpiryDate:       r.ExpiryDate,
		Status:           string(r.Status),
		IsActive:         r.IsActive,
		ActivationDate:   r.ActivationDate,
		ActivatedBy:      r.ActivatedBy,
	}
}

func (d registrationDoc) domain() domain.Registration {
	r := domain.Registration{
		ID:               d.ID,
		UserID:           d.UserID,
		Username:         d.Username,
		MembershipType:   domain.MembershipType(d.MembershipType),
		DurationMonths:   d.DurationMonths,
		Price:            d.Price,
		Profile:          d.Profile.domain(),
		QRCode:           d.QRCode,
		RegistrationDate: d.RegistrationDate.UTC(),
		ExpiryDate:       d.ExpiryDate.UTC(),
		Status:           domain.RegistrationStatus(d.Status),
		IsActive:         d.IsActive,
		ActivatedBy:      d.ActivatedBy,
	}
	if d.ActivationDate != nil {
		at := d.ActivationDate.UTC()
		r.ActivationDate = &at
	}
	return r
}

type memberDoc struct {
	ID             string     `firestore:"id"`
	UserID         string     `firestore:"user_id"`
	RegistrationID string     `firestore:"registration_id"`
	MembershipType string     `firestore:"membership_type"`
	JoinDate       time.Time  `firestore:"join_date"`
	ExpiryDate     time.Time  `firestore:"expiry_date"`
	Profile        profileDoc `firestore:"profile"`
	QRCode         string     `firestore:"qr_code"`
	IsActive       bool       `firestore:"is_active"`
	CreatedAt      time.Time  `firestore:"created_at"`
}

func toMemberDoc(m domain.Member) memberDoc {
	return memberDoc{
		ID:             m.ID,
		UserID:         m.UserID,
		RegistrationID: m.RegistrationID,
		MembershipType: string(m.MembershipType),
		JoinDate:       m.JoinDate,
		ExpiryDate:     m.ExpiryDate,
		Profile:        toProfileDoc(m.Profile),
		QRCode:         m.QRCode,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

func (d memberDoc) domain() domain.Member {
	return domain.Member{
		ID:             d.ID,
		UserID:         d.UserID,
		RegistrationID: d.RegistrationID,
		MembershipType: domain.MembershipType(d.MembershipType),
		JoinDate:       d.JoinDate.UTC(),
		ExpiryDate:     d.ExpiryDate.UTC(),
		Profile:        d.Profile.domain(),
		QRCode:         d.QRCode,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}
