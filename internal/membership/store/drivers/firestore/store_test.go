package firestore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/internal/membership/store/drivers/firestore"
	"github.com/lubana/membership/pkg/idx"
	"github.com/stretchr/testify/require"
)

// These tests talk to the Firestore emulator and are skipped unless
// FIRESTORE_EMULATOR_HOST is set.
func newStore(t *testing.T) *firestore.Store {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	s, err := firestore.NewStore(context.Background(), firestore.Config{ProjectID: "lubana-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestActivationFlow(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Now().UTC().Truncate(time.Millisecond)

	// Ids are random so reruns against a long-lived emulator do not collide.
	u := domain.User{
		ID:        idx.New().String(),
		Username:  "user-" + idx.New().String(),
		Role:      domain.RoleGuest,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))
	require.ErrorIs(t, s.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), Username: u.Username}), store.ErrAlreadyExists)

	got, err := s.Users().GetUserByUsername(ctx, u.Username)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	reg := domain.Registration{
		ID:               idx.New().String(),
		UserID:           u.ID,
		Username:         u.Username,
		MembershipType:   domain.MembershipVIP,
		DurationMonths:   12,
		Price:            domain.QuotePrice(domain.MembershipVIP, 12),
		QRCode:           domain.RegistrationQRCode(u.ID, now),
		RegistrationDate: now,
		ExpiryDate:       now.Add(domain.RegistrationWindow),
		Status:           domain.RegistrationPending,
	}

	err = s.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Registrations().CountOpenPending(ctx, u.ID, now)
		if err != nil {
			return err
		}
		require.Zero(t, n)
		return tx.Registrations().CreateRegistration(ctx, reg)
	})
	require.NoError(t, err)

	byQR, err := s.Registrations().GetRegistrationByQRCode(ctx, reg.QRCode)
	require.NoError(t, err)
	require.Equal(t, reg.ID, byQR.ID)

	member := domain.Member{
		ID:             idx.New().String(),
		UserID:         u.ID,
		RegistrationID: reg.ID,
		MembershipType: reg.MembershipType,
		JoinDate:       now,
		ExpiryDate:     domain.AddMonths(now, 12),
		QRCode:         domain.MemberQRCode(u.ID),
		IsActive:       true,
		CreatedAt:      now,
	}
	err = s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Registrations().MarkRegistrationActivated(ctx, reg.ID, "s1", now); err != nil {
			return err
		}
		return tx.Members().CreateMember(ctx, member)
	})
	require.NoError(t, err)

	require.ErrorIs(t, s.Registrations().MarkRegistrationActivated(ctx, reg.ID, "s2", now), store.ErrConflict)

	m, err := s.Members().GetMemberByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, member.ID, m.ID)
	require.Equal(t, "LUBANA_MEMBER_"+domain.UserPrefix(u.ID), m.QRCode)
}
