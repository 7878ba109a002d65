package sqlite

import (
	"context"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

type membersRepo struct {
	q queryer
}

const memberColumns = `id, user_id, registration_id, membership_type, join_date, expiry_date, ` +
	profileColumns + `, qr_code, is_active, created_at`

func scanMember(row scanner) (domain.Member, error) {
	var (
		m                        domain.Member
		membershipType           string
		joined, expires, created int64
	)
	dest := []any{&m.ID, &m.UserID, &m.RegistrationID, &membershipType, &joined, &expires}
	dest = append(dest, profileDest(&m.Profile)...)
	dest = append(dest, &m.QRCode, &m.IsActive, &created)

	if err := row.Scan(dest...); err != nil {
		return domain.Member{}, mapNotFound(err)
	}

	m.MembershipType = domain.MembershipType(membershipType)
	m.JoinDate = fromMillis(joined)
	m.ExpiryDate = fromMillis(expires)
	m.CreatedAt = fromMillis(created)
	return m, nil
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	args := []any{m.ID, m.UserID, m.RegistrationID, string(m.MembershipType), toMillis(m.JoinDate), toMillis(m.ExpiryDate)}
	args = append(args, profileArgs(m.Profile)...)
	args = append(args, m.QRCode, m.IsActive, toMillis(m.CreatedAt))

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		args...)
	return mapConstraint(err)
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	return scanMember(r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = ?`, id))
}

func (r *membersRepo) GetMemberByUserID(ctx context.Context, userID string) (domain.Member, error) {
	return scanMember(r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members
		WHERE user_id = ?
		ORDER BY join_date DESC, id DESC
		LIMIT 1`, userID))
}

func (r *membersRepo) GetMemberByQRCode(ctx context.Context, code string) (domain.Member, error) {
	return scanMember(r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members
		WHERE qr_code = ?
		ORDER BY join_date DESC, id DESC
		LIMIT 1`, code))
}

func (r *membersRepo) ListMembers(ctx context.Context, t domain.MembershipType, page store.Page) ([]domain.Member, error) {
	page = page.Normalize()

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members
		WHERE (? = '' OR membership_type = ?)
		ORDER BY join_date DESC, id DESC
		LIMIT ? OFFSET ?`,
		string(t), string(t), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
