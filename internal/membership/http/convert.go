package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/membersdk"
)

func toProfile(p domain.Profile) membersdk.Profile {
	return membersdk.Profile{
		FullName:              p.FullName,
		Email:                 p.Email,
		Phone:                 p.Phone,
		Address:               p.Address,
		Gender:                p.Gender,
		DateOfBirth:           p.DateOfBirth,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		MedicalNotes:          p.MedicalNotes,
	}
}

func fromProfile(p membersdk.Profile) domain.Profile {
	return domain.Profile{
		FullName:              p.FullName,
		Email:                 p.Email,
		Phone:                 p.Phone,
		Address:               p.Address,
		Gender:                p.Gender,
		DateOfBirth:           p.DateOfBirth,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		MedicalNotes:          p.MedicalNotes,
	}
}

func toUser(u domain.User) membersdk.UserResponse {
	return membersdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Profile:   toProfile(u.Profile),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toRegistration(r domain.Registration, now time.Time) membersdk.RegistrationResponse {
	return membersdk.RegistrationResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		Username:         r.Username,
		MembershipType:   string(r.MembershipType),
		DurationMonths:   r.DurationMonths,
		Price:            r.Price,
		Profile:          toProfile(r.Profile),
		QRCode:           r.QRCode,
		RegistrationDate: r.RegistrationDate,
		ExpiryDate:       r.ExpiryDate,
		Status:           string(r.Status),
		IsActive:         r.IsActive,
		IsExpired:        !r.IsActivated() && r.IsExpired(now),
		ActivationDate:   r.ActivationDate,
		ActivatedBy:      r.ActivatedBy,
	}
}

func toMember(m domain.Member, now time.Time) membersdk.MemberResponse {
	return membersdk.MemberResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		RegistrationID: m.RegistrationID,
		MembershipType: string(m.MembershipType),
		JoinDate:       m.JoinDate,
		ExpiryDate:     m.ExpiryDate,
		Profile:        toProfile(m.Profile),
		QRCode:         m.QRCode,
		IsActive:       m.IsActive,
		IsCurrent:      m.IsCurrent(now),
	}
}

func toPlan(p service.PlanOption) membersdk.PlanResponse {
	return membersdk.PlanResponse{
		MembershipType:  string(p.MembershipType),
		DurationMonths:  p.DurationMonths,
		MonthlyPrice:    p.MonthlyPrice,
		DiscountPercent: p.DiscountPercent,
		Price:           p.Price,
	}
}

// parsePage reads the limit and offset query parameters.
func parsePage(r *http.Request) (store.Page, bool) {
	var p store.Page
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, false
		}
		p.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, false
		}
		p.Offset = n
	}
	return p, true
}

func now(c service.Clock) time.Time {
	if c == nil {
		return service.SystemClock()
	}
	return c()
}
