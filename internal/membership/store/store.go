package store

import (
	"context"
	"errors"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict is returned when a conditional write finds the record in
	// an unexpected state.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface implemented by the sqlite and
// firestore drivers. Repositories are exposed as methods so a Tx can hand
// out the same repositories bound to a transaction.
type Store interface {
	Users() Users
	Registrations() Registrations
	Members() Members

	ApplyMigrations() error

	// WithTx runs fn in a read/write transaction, committing when fn returns
	// nil and rolling back otherwise. fn must only use tx; drivers may
	// re-run fn when the transaction is contended.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx exposes the repositories bound to one transaction.
type Tx interface {
	Users() Users
	Registrations() Registrations
	Members() Members
}

// Page bounds list queries. A zero Limit means the driver default.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// Normalize clamps p to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	p.Limit = min(p.Limit, MaxPageLimit)
	p.Offset = max(p.Offset, 0)
	return p
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateRole(ctx context.Context, userID string, role domain.Role, at time.Time) error
	UpdateProfile(ctx context.Context, userID string, p domain.Profile, at time.Time) error

	// ListUsers returns users ordered by creation, oldest first. An empty
	// role matches every user.
	ListUsers(ctx context.Context, role domain.Role, page Page) ([]domain.User, error)

	IsEmpty(ctx context.Context) (bool, error)
}

type Registrations interface {
	// CreateRegistration returns ErrAlreadyExists on a duplicate id or QR code.
	CreateRegistration(ctx context.Context, r domain.Registration) error

	GetRegistrationByID(ctx context.Context, id string) (domain.Registration, error)
	GetRegistrationByQRCode(ctx context.Context, code string) (domain.Registration, error)

	// ListRegistrationsByUser returns the user's registrations, newest first.
	ListRegistrationsByUser(ctx context.Context, userID string) ([]domain.Registration, error)

	// CountOpenPending counts the user's pending registrations that have not
	// expired at now.
	CountOpenPending(ctx context.Context, userID string, now time.Time) (int, error)

	// MarkRegistrationActivated moves a registration from pending to
	// activated. It returns ErrConflict when the registration is no longer
	// pending and ErrNotFound when it does not exist.
	MarkRegistrationActivated(ctx context.Context, id, activatedBy string, at time.Time) error

	// ListExpiredPending returns pending registrations whose expiry is
	// strictly before now.
	ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Registration, error)
}

type Members interface {
	// CreateMember returns ErrAlreadyExists when a member already exists for
	// the registration.
	CreateMember(ctx context.Context, m domain.Member) error

	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// GetMemberByUserID and GetMemberByQRCode return the most recently
	// joined membership.
	GetMemberByUserID(ctx context.Context, userID string) (domain.Member, error)
	GetMemberByQRCode(ctx context.Context, code string) (domain.Member, error)

	// ListMembers returns members newest first. An empty type matches all.
	ListMembers(ctx context.Context, t domain.MembershipType, page Page) ([]domain.Member, error)
}
