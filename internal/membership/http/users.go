package http

import (
	"net/http"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/membersdk"
)

type UsersHandler struct {
	UserService *service.UserService
	Now         service.Clock
}

// HandleSignup creates a guest account.
//
//	@Summary		Sign up
//	@Description	Creates a guest account. Guests become members once a registration is activated at the front desk.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		membersdk.SignupRequest		true	"username, password, profile"
//	@Success		201		{object}	membersdk.UserResponse		"The new user"
//	@Failure		400		{object}	membersdk.ErrorResponse		"Invalid username or password"
//	@Failure		409		{object}	membersdk.ErrorResponse		"Username taken"
//	@Failure		429		{object}	membersdk.ErrorResponse		"Rate limited"
//	@Router			/v1/users/signup [post].
func (h *UsersHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req membersdk.SignupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.UserService.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Profile:  fromProfile(req.Profile),
	})
	if err != nil {
		writeServiceError(w, r, err, "create user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleLogin exchanges a username and password for an access token.
//
//	@Summary		Log in
//	@Description	Returns an EdDSA signed JWT access token. Verify it with the keys at /.well-known/jwks.json.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		membersdk.LoginRequest		true	"username, password"
//	@Success		200		{object}	membersdk.TokenResponse		"access_token, token_type, expires_in, user"
//	@Failure		400		{object}	membersdk.ErrorResponse		"Malformed request"
//	@Failure		401		{object}	membersdk.ErrorResponse		"Invalid credentials"
//	@Failure		429		{object}	membersdk.ErrorResponse		"Rate limited"
//	@Router			/v1/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req membersdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	tok, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, membersdk.TokenResponse{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tok.ExpiresAt.Sub(now(h.Now)).Seconds()),
		User:        toUser(tok.User),
	})
}

// HandleMe returns the caller's account.
//
//	@Summary		Current user
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	membersdk.UserResponse
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Failure		404	{object}	membersdk.ErrorResponse	"Account deleted"
//	@Security		BearerAuth
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	u, err := h.UserService.GetUser(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "load user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateProfile replaces the caller's profile.
//
//	@Summary		Update profile
//	@Description	Replaces the caller's profile. Registrations already issued keep the profile they were issued with.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		membersdk.Profile		true	"New profile"
//	@Success		200		{object}	membersdk.UserResponse
//	@Failure		400		{object}	membersdk.ErrorResponse
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users/me/profile [put].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	var req membersdk.Profile
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), p.UserID, fromProfile(req))
	if err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleList lists accounts.
//
//	@Summary		List users
//	@Description	Requires the admin role.
//	@Tags			Users
//	@Produce		json
//	@Param			role	query		string	false	"Filter by role"	Enums(guest, member, staff, admin)
//	@Param			limit	query		int		false	"Page size (default 50, max 500)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	membersdk.ListUsersResponse
//	@Failure		400		{object}	membersdk.ErrorResponse
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		403		{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeBadRequest(w, "limit and offset must be non-negative integers")
		return
	}

	users, err := h.UserService.ListUsers(r.Context(), domain.Role(r.URL.Query().Get("role")), page)
	if err != nil {
		writeServiceError(w, r, err, "list users")
		return
	}

	resp := membersdk.ListUsersResponse{Users: make([]membersdk.UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetRole changes a user's role.
//
//	@Summary		Set user role
//	@Description	Requires the admin role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			body	body		membersdk.SetRoleRequest	true	"role"
//	@Success		200		{object}	membersdk.UserResponse
//	@Failure		400		{object}	membersdk.ErrorResponse	"Unknown role"
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		403		{object}	membersdk.ErrorResponse
//	@Failure		404		{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/role [put].
func (h *UsersHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var req membersdk.SetRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.UserService.SetRole(r.Context(), userID, domain.Role(req.Role)); err != nil {
		writeServiceError(w, r, err, "set role")
		return
	}

	u, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "load user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
