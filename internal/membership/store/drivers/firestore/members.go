package firestore

import (
	"cmp"
	"context"
	"slices"

	gfs "cloud.google.com/go/firestore"
	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

type membersRepo struct {
	repos
}

func (r *membersRepo) col() *gfs.CollectionRef {
	return r.client.Collection(colMembers)
}

// find returns matching members, newest first.
func (r *membersRepo) find(ctx context.Context, q gfs.Query) ([]domain.Member, error) {
	snaps, err := r.sess.query(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]domain.Member, 0, len(snaps))
	for _, snap := range snaps {
		var d memberDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		out = append(out, d.domain())
	}
	slices.SortFunc(out, func(a, b domain.Member) int {
		if c := b.JoinDate.Compare(a.JoinDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *membersRepo) latest(ctx context.Context, field, value string) (domain.Member, error) {
	members, err := r.find(ctx, r.col().Where(field, "==", value))
	if err != nil {
		return domain.Member{}, err
	}
	if len(members) == 0 {
		return domain.Member{}, store.ErrNotFound
	}
	return members[0], nil
}

// CreateMember keys members by registration id so a registration can never
// produce two members; the member id is stored as a field.
func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	return mapErr(r.sess.create(ctx, r.col().Doc(m.RegistrationID), toMemberDoc(m)))
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	return r.latest(ctx, "id", id)
}

func (r *membersRepo) GetMemberByUserID(ctx context.Context, userID string) (domain.Member, error) {
	return r.latest(ctx, "user_id", userID)
}

func (r *membersRepo) GetMemberByQRCode(ctx context.Context, code string) (domain.Member, error) {
	return r.latest(ctx, "qr_code", code)
}

func (r *membersRepo) ListMembers(ctx context.Context, t domain.MembershipType, page store.Page) ([]domain.Member, error) {
	q := r.col().Query
	if t != "" {
		q = q.Where("membership_type", "==", string(t))
	}
	members, err := r.find(ctx, q)
	if err != nil {
		return nil, err
	}
	return paginate(members, page), nil
}
