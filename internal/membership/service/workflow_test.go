package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/stretchr/testify/require"
)

func TestRegistrationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipVIP, 12, 4_080_000)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("LUBANA_REG_U1000000_%d", t0.UnixMilli()), reg.QRCode)
	require.Equal(t, domain.RegistrationPending, reg.Status)
	require.False(t, reg.IsActive)
	require.Equal(t, t0, reg.RegistrationDate)
	require.Equal(t, t0.Add(5*24*time.Hour), reg.ExpiryDate)
	require.Equal(t, "budi", reg.Username)
	require.Equal(t, "Budi Santoso", reg.Profile.FullName)

	f.clock.Advance(time.Hour)

	validated, err := f.validator.Validate(ctx, reg.QRCode)
	require.NoError(t, err)
	require.Equal(t, reg.ID, validated.ID)

	act, err := f.activator.Activate(ctx, validated.ID, "s1")
	require.NoError(t, err)

	activatedAt := t0.Add(time.Hour)
	require.Equal(t, "LUBANA_MEMBER_U1000000", act.Member.QRCode)
	require.Equal(t, activatedAt, act.Member.JoinDate)
	require.Equal(t, time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC), act.Member.ExpiryDate)
	require.Equal(t, domain.MembershipVIP, act.Member.MembershipType)
	require.Equal(t, reg.ID, act.Member.RegistrationID)
	require.True(t, act.Member.IsActive)
	require.NotEmpty(t, act.Message)

	stored, err := f.issuer.Get(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RegistrationActivated, stored.Status)
	require.True(t, stored.IsActive)
	require.Equal(t, "s1", stored.ActivatedBy)
	require.NotNil(t, stored.ActivationDate)
	require.Equal(t, activatedAt, *stored.ActivationDate)
	require.Equal(t, stored, act.Registration)

	require.Equal(t, domain.RoleMember, f.role(t, "u1"))

	member, err := f.members.GetMemberForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, act.Member, member)

	require.Equal(t, 1.0, f.counter(t, "membership_registrations_issued_total", map[string]string{"membership_type": "vip"}))
	require.Equal(t, 1.0, f.counter(t, "membership_activations_total", map[string]string{"result": "ok"}))
}

func TestExpiryIsStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipBasic, 1, 150_000)
	require.NoError(t, err)

	f.clock.Advance(domain.RegistrationWindow)
	_, err = f.validator.Validate(ctx, reg.QRCode)
	require.NoError(t, err, "a code is still valid at its exact expiry instant")

	f.clock.Advance(time.Millisecond)
	_, err = f.validator.Validate(ctx, reg.QRCode)
	require.ErrorIs(t, err, ErrExpired)

	_, err = f.activator.Activate(ctx, reg.ID, "s1")
	require.ErrorIs(t, err, ErrExpired)

	require.Equal(t, domain.RoleGuest, f.role(t, "u1"))
	_, err = f.members.GetMemberForUser(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestValidateRejectsMalformedCodesWithoutLookup(t *testing.T) {
	// A nil store panics on any lookup.
	v := &QRValidator{Now: func() time.Time { return t0 }}

	for _, code := range []string{"", "ABC", "LUBANA_MEMBER_U1000000", "lubana_reg_U1000000_1"} {
		_, err := v.Validate(context.Background(), code)
		require.ErrorIs(t, err, ErrInvalidFormat, code)
	}
}

func TestValidateUnknownCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.validator.Validate(context.Background(), "LUBANA_REG_NOPE0000_1")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, ErrRegistrationNotFound)
	require.Equal(t, 1.0, f.counter(t, "membership_validations_total", map[string]string{"result": "not_found"}))
}

func TestActivateTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipPremium, 3, 712_500)
	require.NoError(t, err)

	first, err := f.activator.Activate(ctx, reg.ID, "s1")
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	_, err = f.activator.Activate(ctx, reg.ID, "s2")
	require.ErrorIs(t, err, ErrAlreadyActivated)

	_, err = f.validator.Validate(ctx, reg.QRCode)
	require.ErrorIs(t, err, ErrAlreadyActivated)
	require.Contains(t, err.Error(), first.Member.JoinDate.Format(time.RFC3339))

	members, err := f.members.ListMembers(ctx, "", store.Page{})
	require.NoError(t, err)
	require.Len(t, members, 1)

	stored, err := f.issuer.Get(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, "s1", stored.ActivatedBy)
}

func TestActivateUnknownRegistration(t *testing.T) {
	f := newFixture(t)

	_, err := f.activator.Activate(context.Background(), "missing", "s1")
	require.ErrorIs(t, err, ErrNotFound)
}

type failingPromoter struct{}

func (failingPromoter) PromoteToMember(context.Context, string) error {
	return errors.New("user directory unavailable")
}

func TestActivateRoleUpdateFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipBasic, 1, 150_000)
	require.NoError(t, err)

	f.activator.Roles = failingPromoter{}
	_, err = f.activator.Activate(ctx, reg.ID, "s1")
	require.ErrorIs(t, err, ErrRoleUpdateFailed)

	stored, err := f.issuer.Get(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RegistrationPending, stored.Status)
	_, err = f.members.GetMemberForUser(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestActivateMemberCreationFailureRollsBackStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipBasic, 6, 810_000)
	require.NoError(t, err)

	// Occupy the registration's member slot so the insert fails.
	require.NoError(t, f.store.Members().CreateMember(ctx, domain.Member{
		ID:             "stale",
		UserID:         "u1",
		RegistrationID: reg.ID,
		MembershipType: domain.MembershipBasic,
		JoinDate:       t0,
		ExpiryDate:     t0,
		QRCode:         domain.MemberQRCode("u1"),
		CreatedAt:      t0,
	}))

	_, err = f.activator.Activate(ctx, reg.ID, "s1")
	require.ErrorIs(t, err, ErrMemberCreationFailed)
	require.NotErrorIs(t, err, ErrStorage)

	stored, err := f.issuer.Get(ctx, reg.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RegistrationPending, stored.Status)
	require.Nil(t, stored.ActivationDate)

	require.Equal(t, domain.RoleMember, f.role(t, "u1"))
	require.Equal(t, 1.0, f.counter(t, "membership_activation_partial_total", nil))
}

func TestIssueValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	tests := []struct {
		name   string
		userID string
		typ    domain.MembershipType
		months int
		price  int64
		want   error
	}{
		{"unknown type", "u1", "gold", 1, 100, ErrInvalidPlan},
		{"unsupported duration", "u1", domain.MembershipBasic, 2, 100, ErrInvalidPlan},
		{"zero price", "u1", domain.MembershipBasic, 1, 0, ErrInvalidPlan},
		{"unknown user", "ghost", domain.MembershipBasic, 1, 150_000, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.issuer.Issue(ctx, tt.userID, tt.typ, tt.months, tt.price)
			require.ErrorIs(t, err, tt.want)
		})
	}

	regs, err := f.issuer.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, regs)
}

func TestIssueRejectsSecondOpenRegistration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	_, err := f.issuer.Issue(ctx, "u1", domain.MembershipBasic, 1, 150_000)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	_, err = f.issuer.Issue(ctx, "u1", domain.MembershipVIP, 12, 4_080_000)
	require.ErrorIs(t, err, ErrPendingRegistrationExists)

	f.clock.Advance(domain.RegistrationWindow)
	second, err := f.issuer.Issue(ctx, "u1", domain.MembershipVIP, 12, 4_080_000)
	require.NoError(t, err)

	regs, err := f.issuer.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.Equal(t, second.ID, regs[0].ID)
}

func TestIssueAfterActivation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	reg, err := f.issuer.Issue(ctx, "u1", domain.MembershipBasic, 1, 150_000)
	require.NoError(t, err)
	_, err = f.activator.Activate(ctx, reg.ID, "s1")
	require.NoError(t, err)

	f.clock.Advance(time.Millisecond)
	renewal, err := f.issuer.Issue(ctx, "u1", domain.MembershipPremium, 3, 712_500)
	require.NoError(t, err)
	require.NotEqual(t, reg.QRCode, renewal.QRCode)
}
