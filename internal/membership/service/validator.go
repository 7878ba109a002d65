package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/slogx"
)

// QRValidator classifies a scanned registration code. It never writes.
type QRValidator struct {
	Store   store.Store
	Metrics *metrics.Metrics
	Now     Clock
}

// Validate returns the registration behind code when it can still be
// activated. Otherwise it fails with ErrInvalidFormat, ErrNotFound,
// ErrAlreadyActivated or ErrExpired. Malformed codes are rejected before
// any lookup.
func (v *QRValidator) Validate(ctx context.Context, code string) (domain.Registration, error) {
	reg, result, err := v.validate(ctx, code)
	v.Metrics.Validation(result)
	if err != nil {
		slogx.FromContext(ctx).Info("registration code rejected", "result", result, "err", err)
	}
	return reg, err
}

func (v *QRValidator) validate(ctx context.Context, code string) (domain.Registration, string, error) {
	if !domain.IsRegistrationQRCode(code) {
		return domain.Registration{}, metrics.ResultInvalidFormat, ErrInvalidFormat
	}

	reg, err := v.Store.Registrations().GetRegistrationByQRCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Registration{}, metrics.ResultNotFound, ErrRegistrationNotFound
		}
		return domain.Registration{}, metrics.ResultFailed, storageErr(err)
	}

	if reg.IsActivated() {
		return domain.Registration{}, metrics.ResultAlreadyActivated, alreadyActivated(reg)
	}
	if reg.IsExpired(v.Now.now()) {
		return domain.Registration{}, metrics.ResultExpired, expired(reg)
	}
	return reg, metrics.ResultOK, nil
}

func alreadyActivated(reg domain.Registration) error {
	if reg.ActivationDate == nil {
		return ErrAlreadyActivated
	}
	return fmt.Errorf("%w on %s", ErrAlreadyActivated, reg.ActivationDate.Format(time.RFC3339))
}

func expired(reg domain.Registration) error {
	return fmt.Errorf("%w on %s", ErrExpired, reg.ExpiryDate.Format(time.RFC3339))
}
