package http

import (
	"net/http"
	"strconv"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/membersdk"
	"github.com/lubana/membership/pkg/qrx"
)

type RegistrationsHandler struct {
	Issuer    *service.RegistrationIssuer
	Validator *service.QRValidator
	Activator *service.Activator
	Now       service.Clock
}

// HandleCreate prices the requested plan and issues a registration for the
// caller.
//
//	@Summary		Create registration
//	@Description	Issues a pending registration with a QR code valid for five days. The price is computed from the plan catalogue.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		membersdk.CreateRegistrationRequest	true	"membership_type, duration_months"
//	@Success		201		{object}	membersdk.RegistrationResponse
//	@Failure		400		{object}	membersdk.ErrorResponse	"Unknown plan"
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		409		{object}	membersdk.ErrorResponse	"A pending registration already exists"
//	@Security		BearerAuth
//	@Router			/v1/registrations [post].
func (h *RegistrationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	var req membersdk.CreateRegistrationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	t := domain.MembershipType(req.MembershipType)
	price, err := service.Quote(t, req.DurationMonths)
	if err != nil {
		writeServiceError(w, r, err, "quote plan")
		return
	}

	reg, err := h.Issuer.Issue(r.Context(), p.UserID, t, req.DurationMonths, price)
	if err != nil {
		writeServiceError(w, r, err, "issue registration")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRegistration(reg, now(h.Now)))
}

// HandleListMine lists the caller's registrations, newest first.
//
//	@Summary		My registrations
//	@Tags			Registrations
//	@Produce		json
//	@Success		200	{object}	membersdk.ListRegistrationsResponse
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/registrations/me [get].
func (h *RegistrationsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	regs, err := h.Issuer.ListForUser(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "list registrations")
		return
	}

	t := now(h.Now)
	resp := membersdk.ListRegistrationsResponse{Registrations: make([]membersdk.RegistrationResponse, len(regs))}
	for i, reg := range regs {
		resp.Registrations[i] = toRegistration(reg, t)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleQR renders the registration's QR code.
//
//	@Summary		Registration QR code
//	@Description	PNG image of the registration code. Only the owner and front desk staff may fetch it.
//	@Tags			Registrations
//	@Produce		png
//	@Param			id		path	string	true	"Registration ID"
//	@Param			size	query	int		false	"Image size in pixels (64-1024, default 256)"
//	@Success		200		{file}	binary
//	@Failure		401		{object}	membersdk.ErrorResponse
//	@Failure		404		{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/registrations/{id}/qr.png [get].
func (h *RegistrationsHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	size := qrx.DefaultSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeBadRequest(w, "size must be an integer")
			return
		}
		size = n
	}

	reg, err := h.Issuer.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "load registration")
		return
	}
	// Other users' registrations are reported as missing.
	if reg.UserID != p.UserID && !domain.Role(p.Role).CanOperateDesk() {
		writeServiceError(w, r, service.ErrRegistrationNotFound, "load registration")
		return
	}

	img, err := qrx.PNG(reg.QRCode, size)
	if err != nil {
		writeServiceError(w, r, err, "render QR code")
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// HandleValidate checks a scanned registration code.
//
//	@Summary		Validate registration QR code
//	@Description	Read only. Returns the registration when it can be activated. Requires the staff or admin role.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			body	body		membersdk.ValidateRequest	true	"qr_code"
//	@Success		200		{object}	membersdk.RegistrationResponse
//	@Failure		400		{object}	membersdk.ErrorResponse	"Not a registration code"
//	@Failure		404		{object}	membersdk.ErrorResponse	"Unknown code"
//	@Failure		409		{object}	membersdk.ErrorResponse	"Already activated"
//	@Failure		410		{object}	membersdk.ErrorResponse	"Expired"
//	@Security		BearerAuth
//	@Router			/v1/registrations/validate [post].
func (h *RegistrationsHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req membersdk.ValidateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	reg, err := h.Validator.Validate(r.Context(), req.QRCode)
	if err != nil {
		writeServiceError(w, r, err, "validate registration")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRegistration(reg, now(h.Now)))
}

// HandleActivate turns a registration into a membership, recording the
// caller as the activating staff member.
//
//	@Summary		Activate registration
//	@Description	Promotes the user to member, marks the registration activated and creates the member record. Requires the staff or admin role.
//	@Tags			Registrations
//	@Produce		json
//	@Param			id	path		string	true	"Registration ID"
//	@Success		200	{object}	membersdk.ActivationResponse
//	@Failure		404	{object}	membersdk.ErrorResponse
//	@Failure		409	{object}	membersdk.ErrorResponse	"Already activated"
//	@Failure		410	{object}	membersdk.ErrorResponse	"Expired"
//	@Failure		500	{object}	membersdk.ErrorResponse	"Role update or member creation failed"
//	@Security		BearerAuth
//	@Router			/v1/registrations/{id}/activate [post].
func (h *RegistrationsHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	act, err := h.Activator.Activate(r.Context(), r.PathValue("id"), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "activate registration")
		return
	}

	t := now(h.Now)
	httpx.WriteJSON(w, http.StatusOK, membersdk.ActivationResponse{
		Member:       toMember(act.Member, t),
		Registration: toRegistration(act.Registration, t),
		Message:      act.Message,
	})
}
