package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/idx"
	"github.com/lubana/membership/pkg/slogx"
)

// RegistrationIssuer creates pending registrations and serves reads of them.
type RegistrationIssuer struct {
	Store   store.Store
	Metrics *metrics.Metrics
	Now     Clock
}

// Issue creates a pending registration for userID with a fresh QR code that
// stays valid for domain.RegistrationWindow. Price is computed by the caller.
// A user may hold only one pending, unexpired registration at a time.
func (s *RegistrationIssuer) Issue(
	ctx context.Context,
	userID string,
	membershipType domain.MembershipType,
	durationMonths int,
	price int64,
) (domain.Registration, error) {
	log := slogx.FromContext(ctx)

	if !membershipType.Valid() || !domain.ValidDuration(durationMonths) || price <= 0 {
		return domain.Registration{}, fmt.Errorf("%w: type=%q months=%d price=%d",
			ErrInvalidPlan, membershipType, durationMonths, price)
	}

	now := s.Now.now()
	var reg domain.Registration

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		open, err := tx.Registrations().CountOpenPending(ctx, userID, now)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrPendingRegistrationExists
		}

		reg = domain.Registration{
			ID:               idx.NewAt(now).String(),
			UserID:           user.ID,
			Username:         user.Username,
			MembershipType:   membershipType,
			DurationMonths:   durationMonths,
			Price:            price,
			Profile:          user.Profile,
			QRCode:           domain.RegistrationQRCode(user.ID, now),
			RegistrationDate: now,
			ExpiryDate:       now.Add(domain.RegistrationWindow),
			Status:           domain.RegistrationPending,
			IsActive:         false,
		}
		return tx.Registrations().CreateRegistration(ctx, reg)
	})
	if err != nil {
		err = storageErr(err)
		log.Warn("registration not issued", "user_id", userID, "err", err)
		return domain.Registration{}, err
	}

	s.Metrics.RegistrationIssued(string(membershipType))
	log.Info("registration issued",
		"registration_id", reg.ID,
		"user_id", reg.UserID,
		"membership_type", reg.MembershipType,
		"duration_months", reg.DurationMonths,
		"expires_at", reg.ExpiryDate,
	)
	return reg, nil
}

func (s *RegistrationIssuer) Get(ctx context.Context, registrationID string) (domain.Registration, error) {
	reg, err := s.Store.Registrations().GetRegistrationByID(ctx, registrationID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Registration{}, ErrRegistrationNotFound
	}
	return reg, storageErr(err)
}

// ListForUser returns the user's registrations, newest first.
func (s *RegistrationIssuer) ListForUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	regs, err := s.Store.Registrations().ListRegistrationsByUser(ctx, userID)
	return regs, storageErr(err)
}
