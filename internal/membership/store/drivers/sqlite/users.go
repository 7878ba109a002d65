package sqlite

import (
	"context"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

type usersRepo struct {
	q queryer
}

const userColumns = `id, username, password_hash, role, ` + profileColumns + `, created_at, updated_at`

func scanUser(row scanner) (domain.User, error) {
	var (
		u                domain.User
		role             string
		created, updated int64
	)
	dest := append([]any{&u.ID, &u.Username, &u.PasswordHash, &role}, profileDest(&u.Profile)...)
	dest = append(dest, &created, &updated)
	if err := row.Scan(dest...); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	args := append([]any{u.ID, u.Username, u.PasswordHash, string(u.Role)}, profileArgs(u.Profile)...)
	args = append(args, toMillis(u.CreatedAt), toMillis(u.UpdatedAt))

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role, at time.Time) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), toMillis(at), userID))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.Profile, at time.Time) error {
	args := append(profileArgs(p), toMillis(at), userID)
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE users SET
			full_name = ?, email = ?, phone = ?, address = ?, gender = ?, date_of_birth = ?,
			emergency_contact_name = ?, emergency_contact_phone = ?, medical_notes = ?,
			updated_at = ?
		WHERE id = ?`,
		args...))
}

func (r *usersRepo) ListUsers(ctx context.Context, role domain.Role, page store.Page) ([]domain.User, error) {
	page = page.Normalize()

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		WHERE (? = '' OR role = ?)
		ORDER BY created_at, id
		LIMIT ? OFFSET ?`,
		string(role), string(role), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
