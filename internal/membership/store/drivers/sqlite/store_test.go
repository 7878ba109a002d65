package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/internal/membership/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, id, username string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: "hash",
		Role:         domain.RoleGuest,
		Profile:      domain.Profile{FullName: "Full " + username, Email: username + "@example.com"},
		CreatedAt:    t0,
		UpdatedAt:    t0,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func pendingRegistration(id string, u domain.User, issued time.Time) domain.Registration {
	return domain.Registration{
		ID:               id,
		UserID:           u.ID,
		Username:         u.Username,
		MembershipType:   domain.MembershipPremium,
		DurationMonths:   3,
		Price:            712_500,
		Profile:          u.Profile,
		QRCode:           domain.RegistrationQRCode(u.ID, issued),
		RegistrationDate: issued,
		ExpiryDate:       issued.Add(domain.RegistrationWindow),
		Status:           domain.RegistrationPending,
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	alice := seedUser(t, s, "u1", "alice")
	seedUser(t, s, "u2", "bob")

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice, got)

	err = s.Users().CreateUser(ctx, domain.User{ID: "u3", Username: "alice", Role: domain.RoleGuest, CreatedAt: t0, UpdatedAt: t0})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, s.Users().UpdateRole(ctx, "u1", domain.RoleStaff, t0.Add(time.Hour)))
	got, err = s.Users().GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, got.Role)
	require.Equal(t, t0.Add(time.Hour), got.UpdatedAt)

	require.ErrorIs(t, s.Users().UpdateRole(ctx, "nobody", domain.RoleMember, t0), store.ErrNotFound)

	profile := domain.Profile{FullName: "Alice A", Phone: "0900", MedicalNotes: "asthma"}
	require.NoError(t, s.Users().UpdateProfile(ctx, "u1", profile, t0))
	got, err = s.Users().GetUserByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, profile, got.Profile)

	all, err := s.Users().ListUsers(ctx, "", store.Page{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	staff, err := s.Users().ListUsers(ctx, domain.RoleStaff, store.Page{})
	require.NoError(t, err)
	require.Len(t, staff, 1)
	require.Equal(t, "u1", staff[0].ID)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegistrations(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "u1", "alice")

	first := pendingRegistration("r1", u, t0)
	second := pendingRegistration("r2", u, t0.Add(10*24*time.Hour))
	require.NoError(t, s.Registrations().CreateRegistration(ctx, first))
	require.NoError(t, s.Registrations().CreateRegistration(ctx, second))

	dup := pendingRegistration("r3", u, t0)
	require.ErrorIs(t, s.Registrations().CreateRegistration(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Registrations().GetRegistrationByQRCode(ctx, first.QRCode)
	require.NoError(t, err)
	require.Equal(t, first, got)

	list, err := s.Registrations().ListRegistrationsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "r2", list[0].ID)

	n, err := s.Registrations().CountOpenPending(ctx, "u1", first.ExpiryDate)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = s.Registrations().CountOpenPending(ctx, "u1", first.ExpiryDate.Add(time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	expired, err := s.Registrations().ListExpiredPending(ctx, first.ExpiryDate.Add(time.Millisecond))
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, "r1", expired[0].ID)
}

func TestMarkRegistrationActivatedIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "u1", "alice")
	require.NoError(t, s.Registrations().CreateRegistration(ctx, pendingRegistration("r1", u, t0)))

	at := t0.Add(time.Hour)
	require.NoError(t, s.Registrations().MarkRegistrationActivated(ctx, "r1", "s1", at))

	got, err := s.Registrations().GetRegistrationByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, domain.RegistrationActivated, got.Status)
	require.True(t, got.IsActive)
	require.Equal(t, "s1", got.ActivatedBy)
	require.NotNil(t, got.ActivationDate)
	require.Equal(t, at, *got.ActivationDate)

	err = s.Registrations().MarkRegistrationActivated(ctx, "r1", "s2", at.Add(time.Minute))
	require.ErrorIs(t, err, store.ErrConflict)

	err = s.Registrations().MarkRegistrationActivated(ctx, "missing", "s1", at)
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err = s.Registrations().GetRegistrationByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, "s1", got.ActivatedBy)
}

func TestMembers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "u1", "alice")
	require.NoError(t, s.Registrations().CreateRegistration(ctx, pendingRegistration("r1", u, t0)))
	require.NoError(t, s.Registrations().CreateRegistration(ctx, pendingRegistration("r2", u, t0.Add(time.Hour))))

	m1 := domain.Member{
		ID:             "m1",
		UserID:         "u1",
		RegistrationID: "r1",
		MembershipType: domain.MembershipBasic,
		JoinDate:       t0,
		ExpiryDate:     domain.AddMonths(t0, 1),
		Profile:        u.Profile,
		QRCode:         domain.MemberQRCode("u1"),
		IsActive:       true,
		CreatedAt:      t0,
	}
	require.NoError(t, s.Members().CreateMember(ctx, m1))

	again := m1
	again.ID = "m-other"
	require.ErrorIs(t, s.Members().CreateMember(ctx, again), store.ErrAlreadyExists)

	m2 := m1
	m2.ID, m2.RegistrationID, m2.MembershipType = "m2", "r2", domain.MembershipVIP
	m2.JoinDate = t0.Add(48 * time.Hour)
	require.NoError(t, s.Members().CreateMember(ctx, m2))

	got, err := s.Members().GetMemberByID(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, m1, got)

	latest, err := s.Members().GetMemberByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "m2", latest.ID)

	scanned, err := s.Members().GetMemberByQRCode(ctx, "LUBANA_MEMBER_U1000000")
	require.NoError(t, err)
	require.Equal(t, "m2", scanned.ID)

	vips, err := s.Members().ListMembers(ctx, domain.MembershipVIP, store.Page{})
	require.NoError(t, err)
	require.Len(t, vips, 1)

	_, err = s.Members().GetMemberByUserID(ctx, "u2")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "u1", "alice")
	require.NoError(t, s.Registrations().CreateRegistration(ctx, pendingRegistration("r1", u, t0)))

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Registrations().MarkRegistrationActivated(ctx, "r1", "s1", t0); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Registrations().GetRegistrationByID(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, domain.RegistrationPending, got.Status)
	require.Nil(t, got.ActivationDate)
}
