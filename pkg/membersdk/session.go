package membersdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Session makes calls as one logged in user. Tokens are not refreshed; log
// in again once the token expires.
type Session struct {
	client      *Client
	accessToken string
	user        UserResponse
}

// NewSession wraps an existing access token.
func (c *Client) NewSession(accessToken string, user UserResponse) *Session {
	return &Session{client: c, accessToken: accessToken, user: user}
}

func (s *Session) AccessToken() string { return s.accessToken }

// User is the account the session logged in as, as of login.
func (s *Session) User() UserResponse { return s.user }

func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	return call[UserResponse](ctx, s.client, http.MethodGet, "/v1/users/me", s.accessToken, nil, http.StatusOK)
}

func (s *Session) UpdateProfile(ctx context.Context, p Profile) (*UserResponse, error) {
	return call[UserResponse](ctx, s.client, http.MethodPut, "/v1/users/me/profile", s.accessToken, p, http.StatusOK)
}

// ListUsers requires the admin role. An empty role lists everyone.
func (s *Session) ListUsers(ctx context.Context, role string, limit, offset int) (*ListUsersResponse, error) {
	q := pageQuery(limit, offset)
	if role != "" {
		q.Set("role", role)
	}
	return call[ListUsersResponse](ctx, s.client, http.MethodGet, "/v1/users"+encode(q), s.accessToken, nil, http.StatusOK)
}

// SetRole requires the admin role.
func (s *Session) SetRole(ctx context.Context, userID, role string) (*UserResponse, error) {
	path := "/v1/users/" + url.PathEscape(userID) + "/role"
	return call[UserResponse](ctx, s.client, http.MethodPut, path, s.accessToken, SetRoleRequest{Role: role}, http.StatusOK)
}

// CreateRegistration issues a registration QR code for the caller.
func (s *Session) CreateRegistration(ctx context.Context, req CreateRegistrationRequest) (*RegistrationResponse, error) {
	return call[RegistrationResponse](ctx, s.client, http.MethodPost, "/v1/registrations", s.accessToken, req, http.StatusCreated)
}

func (s *Session) MyRegistrations(ctx context.Context) (*ListRegistrationsResponse, error) {
	return call[ListRegistrationsResponse](ctx, s.client, http.MethodGet, "/v1/registrations/me", s.accessToken, nil, http.StatusOK)
}

// RegistrationQR downloads the registration's QR code as a PNG. A size of
// zero lets the server pick.
func (s *Session) RegistrationQR(ctx context.Context, registrationID string, size int) ([]byte, error) {
	path := "/v1/registrations/" + url.PathEscape(registrationID) + "/qr.png"
	if size > 0 {
		path += "?size=" + strconv.Itoa(size)
	}
	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.accessToken, nil)
	if err != nil {
		return nil, err
	}
	return readBody(resp, http.StatusOK)
}

// ValidateRegistration checks a scanned registration code. Requires the
// staff or admin role.
func (s *Session) ValidateRegistration(ctx context.Context, qrCode string) (*RegistrationResponse, error) {
	return call[RegistrationResponse](ctx, s.client, http.MethodPost, "/v1/registrations/validate",
		s.accessToken, ValidateRequest{QRCode: qrCode}, http.StatusOK)
}

// ActivateRegistration turns a validated registration into a membership.
// Requires the staff or admin role.
func (s *Session) ActivateRegistration(ctx context.Context, registrationID string) (*ActivationResponse, error) {
	path := "/v1/registrations/" + url.PathEscape(registrationID) + "/activate"
	return call[ActivationResponse](ctx, s.client, http.MethodPost, path, s.accessToken, nil, http.StatusOK)
}

func (s *Session) MyMembership(ctx context.Context) (*MemberResponse, error) {
	return call[MemberResponse](ctx, s.client, http.MethodGet, "/v1/members/me", s.accessToken, nil, http.StatusOK)
}

// ListMembers requires the staff or admin role.
func (s *Session) ListMembers(ctx context.Context, membershipType string, limit, offset int) (*ListMembersResponse, error) {
	q := pageQuery(limit, offset)
	if membershipType != "" {
		q.Set("membership_type", membershipType)
	}
	return call[ListMembersResponse](ctx, s.client, http.MethodGet, "/v1/members"+encode(q), s.accessToken, nil, http.StatusOK)
}

// ScanMember looks up a permanent member QR code. Requires the staff or
// admin role.
func (s *Session) ScanMember(ctx context.Context, qrCode string) (*MemberResponse, error) {
	q := url.Values{"qr_code": {qrCode}}
	return call[MemberResponse](ctx, s.client, http.MethodGet, "/v1/members/scan"+encode(q), s.accessToken, nil, http.StatusOK)
}

func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	return q
}

func encode(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

