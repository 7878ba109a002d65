package domain_test

import (
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/stretchr/testify/require"
)

func TestRegistrationExpiryIsStrict(t *testing.T) {
	issued := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	r := domain.Registration{
		Status:           domain.RegistrationPending,
		RegistrationDate: issued,
		ExpiryDate:       issued.Add(domain.RegistrationWindow),
	}

	require.False(t, r.IsExpired(r.ExpiryDate))
	require.True(t, r.IsActionable(r.ExpiryDate))
	require.True(t, r.IsExpired(r.ExpiryDate.Add(time.Millisecond)))
	require.False(t, r.IsActionable(r.ExpiryDate.Add(time.Millisecond)))

	r.Status = domain.RegistrationActivated
	require.False(t, r.IsActionable(issued))
}

func TestProfileDisplayName(t *testing.T) {
	require.Equal(t, "Nguyen Van A", domain.Profile{FullName: " Nguyen Van A "}.DisplayName("nva"))
	require.Equal(t, "nva", domain.Profile{FullName: "  "}.DisplayName("nva"))
}
