package firestore

import (
	"cmp"
	"context"
	"slices"
	"time"

	gfs "cloud.google.com/go/firestore"
	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
)

type usersRepo struct {
	repos
}

func (r *usersRepo) doc(id string) *gfs.DocumentRef {
	return r.client.Collection(colUsers).Doc(id)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	snap, err := r.sess.get(ctx, r.doc(id))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return domain.User{}, err
	}
	return d.domain(), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	snap, err := r.sess.get(ctx, r.client.Collection(colUsernames).Doc(username))
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	var d usernameDoc
	if err := snap.DataTo(&d); err != nil {
		return domain.User{}, err
	}
	return r.GetUserByID(ctx, d.UserID)
}

// CreateUser reserves the username and writes the user in one transaction.
func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.sess.atomically(ctx, func(s session) error {
		if err := s.create(ctx, r.client.Collection(colUsernames).Doc(u.Username), usernameDoc{UserID: u.ID}); err != nil {
			return err
		}
		return s.create(ctx, r.doc(u.ID), toUserDoc(u))
	})
	return mapErr(err)
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role, at time.Time) error {
	return mapErr(r.sess.update(ctx, r.doc(userID), []gfs.Update{
		{Path: "role", Value: string(role)},
		{Path: "updated_at", Value: at},
	}))
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID string, p domain.Profile, at time.Time) error {
	return mapErr(r.sess.update(ctx, r.doc(userID), []gfs.Update{
		{Path: "profile", Value: toProfileDoc(p)},
		{Path: "updated_at", Value: at},
	}))
}

func (r *usersRepo) ListUsers(ctx context.Context, role domain.Role, page store.Page) ([]domain.User, error) {
	q := r.client.Collection(colUsers).Query
	if role != "" {
		q = q.Where("role", "==", string(role))
	}

	snaps, err := r.sess.query(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}

	users := make([]domain.User, 0, len(snaps))
	for _, snap := range snaps {
		var d userDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		users = append(users, d.domain())
	}
	slices.SortFunc(users, func(a, b domain.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return paginate(users, page), nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	snaps, err := r.sess.query(ctx, r.client.Collection(colUsers).Limit(1))
	if err != nil {
		return false, mapErr(err)
	}
	return len(snaps) == 0, nil
}
