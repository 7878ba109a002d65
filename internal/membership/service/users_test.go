package service

import (
	"context"
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Signup(ctx, SignupInput{
		Username: "  Budi ",
		Password: "correct horse",
		Profile:  domain.Profile{FullName: "Budi Santoso"},
	})
	require.NoError(t, err)
	require.Equal(t, "budi", u.Username)
	require.Equal(t, domain.RoleGuest, u.Role)
	require.Len(t, u.ID, 26)
	require.NotEqual(t, "correct horse", u.PasswordHash)

	_, err = f.users.Signup(ctx, SignupInput{Username: "BUDI", Password: "another pass"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	tok, err := f.users.Login(ctx, "Budi", "correct horse")
	require.NoError(t, err)
	require.Equal(t, t0.Add(jwtx.DefaultAccessTokenTTL), tok.ExpiresAt)

	verifier := jwtx.NewVerifier(f.users.Signer.KID(), f.users.Signer.PublicKey(), f.users.Issuer)
	verifier.Now = f.clock.Now
	claims, err := verifier.Verify(tok.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "guest", claims.Role)
	require.Equal(t, "budi", claims.Username)

	_, err = f.users.Login(ctx, "budi", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.users.Login(ctx, "nobody", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupValidation(t *testing.T) {
	f := newFixture(t)

	for _, in := range []SignupInput{
		{Username: "ab", Password: "long enough"},
		{Username: "has space", Password: "long enough"},
		{Username: "budi", Password: "short"},
	} {
		_, err := f.users.Signup(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidUserRequest, in.Username)
	}
}

func TestPromoteToMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "guest1", "guest1")
	f.seedUser(t, "staff1", "staff1")
	require.NoError(t, f.users.SetRole(ctx, "staff1", domain.RoleStaff))

	require.NoError(t, f.users.PromoteToMember(ctx, "guest1"))
	require.Equal(t, domain.RoleMember, f.role(t, "guest1"))

	require.NoError(t, f.users.PromoteToMember(ctx, "staff1"))
	require.Equal(t, domain.RoleStaff, f.role(t, "staff1"))

	require.ErrorIs(t, f.users.PromoteToMember(ctx, "ghost"), ErrNotFound)
}

func TestSetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")

	require.ErrorIs(t, f.users.SetRole(ctx, "u1", "owner"), ErrInvalidRole)
	require.ErrorIs(t, f.users.SetRole(ctx, "ghost", domain.RoleAdmin), ErrUserNotFound)
	require.NoError(t, f.users.SetRole(ctx, "u1", domain.RoleAdmin))
	require.Equal(t, domain.RoleAdmin, f.role(t, "u1"))
}

func TestUpdateProfileAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedUser(t, "u1", "budi")
	f.seedUser(t, "u2", "sari")
	require.NoError(t, f.users.SetRole(ctx, "u2", domain.RoleStaff))

	f.clock.Advance(time.Minute)
	p := domain.Profile{FullName: "Budi S.", Phone: "+62 800", MedicalNotes: "asthma"}
	u, err := f.users.UpdateProfile(ctx, "u1", p)
	require.NoError(t, err)
	require.Equal(t, p, u.Profile)
	require.Equal(t, t0.Add(time.Minute), u.UpdatedAt)

	_, err = f.users.UpdateProfile(ctx, "ghost", p)
	require.ErrorIs(t, err, ErrNotFound)

	all, err := f.users.ListUsers(ctx, "", store.Page{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	staff, err := f.users.ListUsers(ctx, domain.RoleStaff, store.Page{})
	require.NoError(t, err)
	require.Len(t, staff, 1)
	require.Equal(t, "u2", staff[0].ID)

	_, err = f.users.ListUsers(ctx, "owner", store.Page{})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.EnsureAdmin(ctx, "", "")
	require.NoError(t, err)
	require.False(t, created)

	created, err = f.users.EnsureAdmin(ctx, "Admin", "admin password")
	require.NoError(t, err)
	require.True(t, created)

	created, err = f.users.EnsureAdmin(ctx, "other", "admin password")
	require.NoError(t, err)
	require.False(t, created)

	tok, err := f.users.Login(ctx, "admin", "admin password")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, tok.User.Role)
}
