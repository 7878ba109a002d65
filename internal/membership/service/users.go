package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/store"
	"github.com/lubana/membership/pkg/cryptox"
	"github.com/lubana/membership/pkg/idx"
	"github.com/lubana/membership/pkg/jwtx"
	"github.com/lubana/membership/pkg/slogx"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
)

// RolePromoter grants the member role after a successful activation.
type RolePromoter interface {
	PromoteToMember(ctx context.Context, userID string) error
}

type UserService struct {
	Store     store.Store
	Hasher    *cryptox.Hasher
	Signer    *jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
	Now       Clock
}

var _ RolePromoter = (*UserService)(nil)

type SignupInput struct {
	Username string
	Password string
	Profile  domain.Profile
}

// AccessToken is a signed bearer token for a user.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

func validateCredentials(username, password string) error {
	if n := len(username); n < minUsernameLen || n > maxUsernameLen {
		return fmt.Errorf("%w: username must be %d to %d characters", ErrInvalidUserRequest, minUsernameLen, maxUsernameLen)
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: username must not contain spaces", ErrInvalidUserRequest)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUserRequest, minPasswordLen)
	}
	return nil
}

// Signup creates a guest account.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if err := validateCredentials(username, in.Password); err != nil {
		return domain.User{}, err
	}
	return s.create(ctx, username, in.Password, domain.RoleGuest, in.Profile)
}

func (s *UserService) create(ctx context.Context, username, password string, role domain.Role, p domain.Profile) (domain.User, error) {
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.Now.now()
	u := domain.User{
		ID:           idx.NewOpaque().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Profile:      p,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, storageErr(err)
	}

	slogx.FromContext(ctx).Info("user created", "user_id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

// Login checks the password and issues an access token.
func (s *UserService) Login(ctx context.Context, username, password string) (AccessToken, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AccessToken{}, ErrInvalidCredentials
		}
		return AccessToken{}, storageErr(err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("login rejected", "user_id", u.ID, "err", err)
		return AccessToken{}, ErrInvalidCredentials
	}

	now := s.Now.now()
	claims := jwtx.NewAccessClaims(s.Issuer, u.ID, u.Username, string(u.Role), s.accessTTL(), now)
	raw, err := s.Signer.Sign(claims)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return AccessToken{Token: raw, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

func (s *UserService) accessTTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, storageErr(err)
}

// UpdateProfile replaces the user's profile. Registrations already issued
// keep their own copy.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p domain.Profile) (domain.User, error) {
	if err := s.Store.Users().UpdateProfile(ctx, userID, p, s.Now.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, storageErr(err)
	}
	return s.GetUser(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, role domain.Role, page store.Page) ([]domain.User, error) {
	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	users, err := s.Store.Users().ListUsers(ctx, role, page)
	return users, storageErr(err)
}

// SetRole stores role verbatim on the user.
func (s *UserService) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if err := s.Store.Users().UpdateRole(ctx, userID, role, s.Now.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return storageErr(err)
	}

	slogx.FromContext(ctx).Info("user role changed", "user_id", userID, "role", role)
	return nil
}

// PromoteToMember gives a guest the member role. Members keep their role,
// and staff and admins are never demoted by buying a membership.
func (s *UserService) PromoteToMember(ctx context.Context, userID string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if u.Role != domain.RoleGuest {
		return nil
	}
	return s.SetRole(ctx, userID, domain.RoleMember)
}

// EnsureAdmin creates an admin account when the user table is empty. It
// reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, storageErr(err)
	}
	if !empty {
		return false, nil
	}

	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateCredentials(username, password); err != nil {
		return false, err
	}
	if _, err := s.create(ctx, username, password, domain.RoleAdmin, domain.Profile{FullName: "Administrator"}); err != nil {
		return false, err
	}
	return true, nil
}
