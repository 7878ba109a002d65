package service

import (
	"context"
	"errors"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

// MemberService is the read side of Member records.
type MemberService struct {
	Store store.Store
}

func (s *MemberService) GetMember(ctx context.Context, id string) (domain.Member, error) {
	return memberOrNotFound(s.Store.Members().GetMemberByID(ctx, id))
}

// GetMemberForUser returns the user's most recent membership.
func (s *MemberService) GetMemberForUser(ctx context.Context, userID string) (domain.Member, error) {
	return memberOrNotFound(s.Store.Members().GetMemberByUserID(ctx, userID))
}

// ScanMember resolves a permanent member QR code shown at the front desk.
func (s *MemberService) ScanMember(ctx context.Context, code string) (domain.Member, error) {
	if !domain.IsMemberQRCode(code) {
		return domain.Member{}, ErrInvalidFormat
	}
	return memberOrNotFound(s.Store.Members().GetMemberByQRCode(ctx, code))
}

func (s *MemberService) ListMembers(ctx context.Context, t domain.MembershipType, page store.Page) ([]domain.Member, error) {
	if t != "" && !t.Valid() {
		return nil, ErrInvalidPlan
	}
	members, err := s.Store.Members().ListMembers(ctx, t, page)
	return members, storageErr(err)
}

func memberOrNotFound(m domain.Member, err error) (domain.Member, error) {
	if errors.Is(err, store.ErrNotFound) {
		return domain.Member{}, ErrMemberNotFound
	}
	return m, storageErr(err)
}
