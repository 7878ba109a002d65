package service

import (
	"errors"
	"fmt"
)

// Registration workflow errors. Every failure returned by the issuer,
// validator and activator matches exactly one of these with errors.Is.
var (
	ErrInvalidFormat = errors.New("invalid QR code format")

	ErrNotFound             = errors.New("not found")
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrMemberNotFound       = fmt.Errorf("member %w", ErrNotFound)

	ErrAlreadyActivated          = errors.New("registration already activated")
	ErrExpired                   = errors.New("registration expired")
	ErrRoleUpdateFailed          = errors.New("failed to update user role")
	ErrMemberCreationFailed      = errors.New("failed to create member record")
	ErrStorage                   = errors.New("storage error")
	ErrInvalidPlan               = errors.New("invalid membership plan")
	ErrPendingRegistrationExists = errors.New("user already has a pending registration")
)

// User management errors.
var (
	ErrInvalidUserRequest = errors.New("invalid user request")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

var kinds = []error{
	ErrInvalidFormat,
	ErrNotFound,
	ErrAlreadyActivated,
	ErrExpired,
	ErrRoleUpdateFailed,
	ErrMemberCreationFailed,
	ErrStorage,
	ErrInvalidPlan,
	ErrPendingRegistrationExists,
	ErrInvalidUserRequest,
	ErrUsernameTaken,
	ErrInvalidCredentials,
	ErrInvalidRole,
}

// storageErr classifies err as ErrStorage unless it already carries one of
// the package's error kinds.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
