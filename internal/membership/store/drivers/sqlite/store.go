package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

var _ store.Store = (*Store)(nil)

// NewStore opens the database at dsn. SQLite allows one writer at a time so
// the pool is limited to a single connection, which also keeps ":memory:"
// databases shared across calls.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(repos{q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return repos{q: s.db}.Users() }
func (s *Store) Registrations() store.Registrations { return repos{q: s.db}.Registrations() }
func (s *Store) Members() store.Members             { return repos{q: s.db}.Members() }

// repos hands out repositories bound to q, which is the database itself or
// an open transaction.
type repos struct {
	q queryer
}

func (r repos) Users() store.Users                 { return &usersRepo{q: r.q} }
func (r repos) Registrations() store.Registrations { return &registrationsRepo{q: r.q} }
func (r repos) Members() store.Members             { return &membersRepo{q: r.q} }

type scanner interface {
	Scan(dest ...any) error
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapConstraint(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
		}
	}
	return err
}

// expectOne maps an UPDATE that touched no rows to ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

const profileColumns = `full_name, email, phone, address, gender, date_of_birth,
	emergency_contact_name, emergency_contact_phone, medical_notes`

func profileArgs(p domain.Profile) []any {
	return []any{
		p.FullName, p.Email, p.Phone, p.Address, p.Gender, p.DateOfBirth,
		p.EmergencyContactName, p.EmergencyContactPhone, p.MedicalNotes,
	}
}

func profileDest(p *domain.Profile) []any {
	return []any{
		&p.FullName, &p.Email, &p.Phone, &p.Address, &p.Gender, &p.DateOfBirth,
		&p.EmergencyContactName, &p.EmergencyContactPhone, &p.MedicalNotes,
	}
}
