package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

type registrationsRepo struct {
	q queryer
}

const registrationColumns = `id, user_id, username, membership_type, duration_months, price, ` +
	profileColumns + `, qr_code, registration_date, expiry_date, status, is_active,
	activation_date, activated_by`

func scanRegistration(row scanner) (domain.Registration, error) {
	var (
		r                      domain.Registration
		membershipType, status string
		registered, expires    int64
		activatedAt            sql.NullInt64
	)
	dest := []any{&r.ID, &r.UserID, &r.Username, &membershipType, &r.DurationMonths, &r.Price}
	dest = append(dest, profileDest(&r.Profile)...)
	dest = append(dest, &r.QRCode, &registered, &expires, &status, &r.IsActive, &activatedAt, &r.ActivatedBy)

	if err := row.Scan(dest...); err != nil {
		return domain.Registration{}, mapNotFound(err)
	}

	r.MembershipType = domain.MembershipType(membershipType)
	r.Status = domain.RegistrationStatus(status)
	r.RegistrationDate = fromMillis(registered)
	r.ExpiryDate = fromMillis(expires)
	if activatedAt.Valid {
		at := fromMillis(activatedAt.Int64)
		r.ActivationDate = &at
	}
	return r, nil
}

func (r *registrationsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Registration, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	return out, rows.Err()
}

func (r *registrationsRepo) CreateRegistration(ctx context.Context, reg domain.Registration) error {
	var activatedAt sql.NullInt64
	if reg.ActivationDate != nil {
		activatedAt = sql.NullInt64{Int64: toMillis(*reg.ActivationDate), Valid: true}
	}

	args := []any{reg.ID, reg.UserID, reg.Username, string(reg.MembershipType), reg.DurationMonths, reg.Price}
	args = append(args, profileArgs(reg.Profile)...)
	args = append(args,
		reg.QRCode, toMillis(reg.RegistrationDate), toMillis(reg.ExpiryDate),
		string(reg.Status), reg.IsActive, activatedAt, reg.ActivatedBy,
	)

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO registrations (`+registrationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...)
	return mapConstraint(err)
}

func (r *registrationsRepo) GetRegistrationByID(ctx context.Context, id string) (domain.Registration, error) {
	return scanRegistration(r.q.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = ?`, id))
}

func (r *registrationsRepo) GetRegistrationByQRCode(ctx context.Context, code string) (domain.Registration, error) {
	return scanRegistration(r.q.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE qr_code = ?`, code))
}

func (r *registrationsRepo) ListRegistrationsByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	return r.list(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		WHERE user_id = ?
		ORDER BY registration_date DESC, id DESC`,
		userID)
}

func (r *registrationsRepo) CountOpenPending(ctx context.Context, userID string, now time.Time) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations
		WHERE user_id = ? AND status = 'pending' AND expiry_date >= ?`,
		userID, toMillis(now)).Scan(&n)
	return n, err
}

func (r *registrationsRepo) MarkRegistrationActivated(ctx context.Context, id, activatedBy string, at time.Time) error {
	err := expectOne(r.q.ExecContext(ctx,
		`UPDATE registrations
		SET status = 'activated', is_active = 1, activation_date = ?, activated_by = ?
		WHERE id = ? AND status = 'pending'`,
		toMillis(at), activatedBy, id))
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	// Nothing changed: tell a missing row apart from one that is no longer
	// pending.
	var exists int
	err = r.q.QueryRowContext(ctx, `SELECT 1 FROM registrations WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrConflict
}

func (r *registrationsRepo) ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Registration, error) {
	return r.list(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		WHERE status = 'pending' AND expiry_date < ?
		ORDER BY expiry_date`,
		toMillis(now))
}
