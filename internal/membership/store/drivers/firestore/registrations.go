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

type registrationsRepo struct {
	repos
}

func (r *registrationsRepo) col() *gfs.CollectionRef {
	return r.client.Collection(colRegistrations)
}

func (r *registrationsRepo) find(ctx context.Context, q gfs.Query) ([]domain.Registration, error) {
	snaps, err := r.sess.query(ctx, q)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]domain.Registration, 0, len(snaps))
	for _, snap := range snaps {
		var d registrationDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		out = append(out, d.domain())
	}
	return out, nil
}

// CreateRegistration uses the registration id as document id. QR codes embed
// the issue time in milliseconds and are not re-checked here.
func (r *registrationsRepo) CreateRegistration(ctx context.Context, reg domain.Registration) error {
	return mapErr(r.sess.create(ctx, r.col().Doc(reg.ID), toRegistrationDoc(reg)))
}

func (r *registrationsRepo) GetRegistrationByID(ctx context.Context, id string) (domain.Registration, error) {
	snap, err := r.sess.get(ctx, r.col().Doc(id))
	if err != nil {
		return domain.Registration{}, mapErr(err)
	}
	var d registrationDoc
	if err := snap.DataTo(&d); err != nil {
		return domain.Registration{}, err
	}
	return d.domain(), nil
}

func (r *registrationsRepo) GetRegistrationByQRCode(ctx context.Context, code string) (domain.Registration, error) {
	regs, err := r.find(ctx, r.col().Where("qr_code", "==", code).Limit(1))
	if err != nil {
		return domain.Registration{}, err
	}
	if len(regs) == 0 {
		return domain.Registration{}, store.ErrNotFound
	}
	return regs[0], nil
}

func (r *registrationsRepo) ListRegistrationsByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	regs, err := r.find(ctx, r.col().Where("user_id", "==", userID))
	if err != nil {
		return nil, err
	}
	slices.SortFunc(regs, func(a, b domain.Registration) int {
		if c := b.RegistrationDate.Compare(a.RegistrationDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return regs, nil
}

func (r *registrationsRepo) CountOpenPending(ctx context.Context, userID string, now time.Time) (int, error) {
	regs, err := r.find(ctx, r.col().Where("user_id", "==", userID))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, reg := range regs {
		if reg.IsActionable(now) {
			n++
		}
	}
	return n, nil
}

func (r *registrationsRepo) MarkRegistrationActivated(ctx context.Context, id, activatedBy string, at time.Time) error {
	ref := r.col().Doc(id)
	err := r.sess.atomically(ctx, func(s session) error {
		snap, err := s.get(ctx, ref)
		if err != nil {
			return mapErr(err)
		}
		status, err := snap.DataAt("status")
		if err != nil {
			return err
		}
		if status != string(domain.RegistrationPending) {
			return store.ErrConflict
		}
		return s.update(ctx, ref, []gfs.Update{
			{Path: "status", Value: string(domain.RegistrationActivated)},
			{Path: "is_active", Value: true},
			{Path: "activation_date", Value: at},
			{Path: "activated_by", Value: activatedBy},
		})
	})
	return mapErr(err)
}

func (r *registrationsRepo) ListExpiredPending(ctx context.Context, now time.Time) ([]domain.Registration, error) {
	regs, err := r.find(ctx, r.col().Where("status", "==", string(domain.RegistrationPending)))
	if err != nil {
		return nil, err
	}
	expired := slices.DeleteFunc(regs, func(reg domain.Registration) bool {
		return !reg.IsExpired(now)
	})
	slices.SortFunc(expired, func(a, b domain.Registration) int {
		return a.ExpiryDate.Compare(b.ExpiryDate)
	})
	return expired, nil
}
