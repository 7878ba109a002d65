package domain_test

import (
	"testing"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/stretchr/testify/require"
)

func TestQuotePrice(t *testing.T) {
	tests := []struct {
		plan   domain.MembershipType
		months int
		want   int64
	}{
		{domain.MembershipBasic, 1, 150_000},
		{domain.MembershipBasic, 3, 427_500},
		{domain.MembershipPremium, 6, 1_350_000},
		{domain.MembershipVIP, 12, 4_080_000},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, domain.QuotePrice(tt.plan, tt.months), "%s x %d", tt.plan, tt.months)
	}
}

func TestPlanValidation(t *testing.T) {
	for _, mt := range domain.MembershipTypes {
		require.True(t, mt.Valid())
	}
	require.False(t, domain.MembershipType("gold").Valid())
	require.False(t, domain.MembershipType("VIP").Valid())

	for _, d := range domain.Durations {
		require.True(t, domain.ValidDuration(d))
	}
	require.False(t, domain.ValidDuration(2))
	require.False(t, domain.ValidDuration(0))
}

func TestRoleValid(t *testing.T) {
	require.True(t, domain.RoleMember.Valid())
	require.False(t, domain.Role("Member").Valid())
	require.True(t, domain.RoleStaff.CanOperateDesk())
	require.False(t, domain.RoleMember.CanOperateDesk())
}
