package service

import (
	"context"
	"testing"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/internal/membership/store/drivers/sqlite"
	"github.com/lubana/membership/pkg/cryptox"
	"github.com/lubana/membership/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	store     store.Store
	clock     *testClock
	registry  *prometheus.Registry
	users     *UserService
	issuer    *RegistrationIssuer
	validator *QRValidator
	activator *Activator
	members   *MemberService
}

func newStore(t *testing.T) store.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := newStore(t)
	clk := &testClock{t: t0}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	key, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("test-key", key)
	require.NoError(t, err)

	users := &UserService{
		Store:  s,
		Hasher: cryptox.NewHasher([]byte("test-pepper")),
		Signer: signer,
		Issuer: "https://lubana.test",
		Now:    clk.Now,
	}

	return &fixture{
		store:     s,
		clock:     clk,
		registry:  reg,
		users:     users,
		issuer:    &RegistrationIssuer{Store: s, Metrics: m, Now: clk.Now},
		validator: &QRValidator{Store: s, Metrics: m, Now: clk.Now},
		activator: &Activator{Store: s, Roles: users, Metrics: m, Now: clk.Now},
		members:   &MemberService{Store: s},
	}
}

// seedUser inserts a guest with a fixed id so QR codes are predictable.
func (f *fixture) seedUser(t *testing.T, id, username string) domain.User {
	t.Helper()
	u := domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: "unused",
		Role:         domain.RoleGuest,
		Profile: domain.Profile{
			FullName:              "Budi Santoso",
			Email:                 username + "@example.com",
			Phone:                 "+62 812 0000 0000",
			EmergencyContactName:  "Sari",
			EmergencyContactPhone: "+62 812 1111 1111",
		},
		CreatedAt: f.clock.Now(),
		UpdatedAt: f.clock.Now(),
	}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) role(t *testing.T, userID string) domain.Role {
	t.Helper()
	u, err := f.store.Users().GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	return u.Role
}

func (f *fixture) counter(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := f.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}
