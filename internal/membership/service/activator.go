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

// Activation is the outcome of a successful Activate.
type Activation struct {
	Member       domain.Member
	Registration domain.Registration
	Message      string
}

// Activator turns a validated registration into a Member.
type Activator struct {
	Store   store.Store
	Roles   RolePromoter
	Metrics *metrics.Metrics
	Now     Clock
}

// Activate promotes the registration's user to member, marks the
// registration activated and creates the Member record. The status change
// and the Member insert commit together; the role promotion happens before
// them and is not undone if they fail.
func (a *Activator) Activate(ctx context.Context, registrationID, activatedBy string) (Activation, error) {
	ctx = slogx.With(ctx, "registration_id", registrationID, "activated_by", activatedBy)
	log := slogx.FromContext(ctx)

	act, err := a.activate(ctx, registrationID, activatedBy)
	a.Metrics.Activation(activationResult(err))
	if err != nil {
		log.Info("activation failed", "err", err)
		return Activation{}, err
	}

	log.Info("registration activated",
		"user_id", act.Member.UserID,
		"member_id", act.Member.ID,
		"membership_type", act.Member.MembershipType,
		"member_expires_at", act.Member.ExpiryDate,
	)
	return act, nil
}

func (a *Activator) activate(ctx context.Context, registrationID, activatedBy string) (Activation, error) {
	reg, err := a.Store.Registrations().GetRegistrationByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Activation{}, ErrRegistrationNotFound
		}
		return Activation{}, storageErr(err)
	}

	now := a.Now.now()
	if reg.IsActivated() {
		return Activation{}, alreadyActivated(reg)
	}
	if reg.IsExpired(now) {
		return Activation{}, expired(reg)
	}

	if err := a.Roles.PromoteToMember(ctx, reg.UserID); err != nil {
		return Activation{}, fmt.Errorf("%w: %w", ErrRoleUpdateFailed, err)
	}

	member := domain.Member{
		ID:             idx.NewAt(now).String(),
		UserID:         reg.UserID,
		RegistrationID: reg.ID,
		MembershipType: reg.MembershipType,
		JoinDate:       now,
		ExpiryDate:     domain.AddMonths(now, reg.DurationMonths),
		Profile:        reg.Profile,
		QRCode:         domain.MemberQRCode(reg.UserID),
		IsActive:       true,
		CreatedAt:      now,
	}
	member.Profile.FullName = reg.Profile.DisplayName(reg.Username)

	err = a.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Registrations().MarkRegistrationActivated(ctx, reg.ID, activatedBy, now)
		switch {
		case errors.Is(err, store.ErrConflict):
			return ErrAlreadyActivated
		case errors.Is(err, store.ErrNotFound):
			return ErrRegistrationNotFound
		case err != nil:
			return err
		}

		if err := tx.Members().CreateMember(ctx, member); err != nil {
			return fmt.Errorf("%w: %w", ErrMemberCreationFailed, err)
		}
		return nil
	})
	if err != nil {
		err = storageErr(err)
		if !errors.Is(err, ErrAlreadyActivated) {
			slogx.FromContext(ctx).Warn("user promoted but registration not activated",
				"user_id", reg.UserID, "err", err)
			a.Metrics.ActivationPartial()
		}
		return Activation{}, err
	}

	reg.Status = domain.RegistrationActivated
	reg.IsActive = true
	reg.ActivationDate = &now
	reg.ActivatedBy = activatedBy

	return Activation{
		Member:       member,
		Registration: reg,
		Message: fmt.Sprintf("%s is now a %s member until %s",
			member.Profile.FullName, member.MembershipType, member.ExpiryDate.Format("2006-01-02")),
	}, nil
}

func activationResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ErrAlreadyActivated):
		return metrics.ResultAlreadyActivated
	case errors.Is(err, ErrExpired):
		return metrics.ResultExpired
	default:
		return metrics.ResultFailed
	}
}
