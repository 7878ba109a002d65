package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/metrics"
	"github.com/lubana/membership/internal/membership/store"
)

const DefaultReconcileInterval = time.Hour

// Reconciler periodically repairs activations that promoted a user but never
// created the Member record, and publishes the expired-pending gauge.
type Reconciler struct {
	Store    store.Store
	Users    *UserService
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Interval time.Duration
	Now      Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewReconciler creates a reconciler. A non-positive interval defaults to
// one hour.
func NewReconciler(s store.Store, users *UserService, m *metrics.Metrics, logger *slog.Logger, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	return &Reconciler{
		Store:    s,
		Users:    users,
		Metrics:  m,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (r *Reconciler) Start() {
	go r.run()
	r.Logger.Info("reconciler started", "interval", r.Interval)
}

// Stop blocks until an in-progress pass has finished.
func (r *Reconciler) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("reconciler stopped")
}

func (r *Reconciler) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	r.tick()
	for {
		select {
		case <-ticker.C:
			r.tick()
		case <-r.stopCh:
			return
		}
	}
}

func (r *Reconciler) tick() {
	if _, err := r.RunOnce(context.Background()); err != nil {
		r.Logger.Error("reconcile pass failed", "error", err)
	}
}

// RunOnce performs a single pass and returns how many roles were reverted.
func (r *Reconciler) RunOnce(ctx context.Context) (int, error) {
	expired, err := r.Store.Registrations().ListExpiredPending(ctx, r.Now.now())
	if err != nil {
		return 0, storageErr(err)
	}
	r.Metrics.SetExpiredPending(len(expired))

	seen := make(map[string]bool, len(expired))
	reverted := 0
	for _, reg := range expired {
		if seen[reg.UserID] {
			continue
		}
		seen[reg.UserID] = true

		ok, err := r.revertOrphan(ctx, reg)
		if err != nil {
			r.Logger.Error("failed to reconcile user role",
				"user_id", reg.UserID, "registration_id", reg.ID, "error", err)
			continue
		}
		if ok {
			reverted++
		}
	}

	r.Logger.Debug("reconcile pass completed", "expired_pending", len(expired), "reverted", reverted)
	return reverted, nil
}

// revertOrphan demotes reg's user back to guest when they hold the member
// role without any Member record.
func (r *Reconciler) revertOrphan(ctx context.Context, reg domain.Registration) (bool, error) {
	user, err := r.Users.GetUser(ctx, reg.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if user.Role != domain.RoleMember {
		return false, nil
	}

	_, err = r.Store.Members().GetMemberByUserID(ctx, reg.UserID)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, storageErr(err)
	}

	if err := r.Users.SetRole(ctx, reg.UserID, domain.RoleGuest); err != nil {
		return false, err
	}

	r.Logger.Warn("reverted orphaned member role",
		"user_id", reg.UserID, "registration_id", reg.ID)
	r.Metrics.RoleReverted()
	return true, nil
}
