package http

import (
	"net/http"

	"github.com/lubana/membership/internal/membership/domain"
	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/membersdk"
)

type MembersHandler struct {
	MemberService *service.MemberService
	Now           service.Clock
}

// HandleMe returns the caller's latest membership.
//
//	@Summary		My membership
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	membersdk.MemberResponse
//	@Failure		401	{object}	membersdk.ErrorResponse
//	@Failure		404	{object}	membersdk.ErrorResponse	"Not a member yet"
//	@Security		BearerAuth
//	@Router			/v1/members/me [get].
func (h *MembersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	m, err := h.MemberService.GetMemberForUser(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "load membership")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMember(m, now(h.Now)))
}

// HandleList lists members, newest first.
//
//	@Summary		List members
//	@Description	Requires the staff or admin role.
//	@Tags			Members
//	@Produce		json
//	@Param			membership_type	query		string	false	"Filter by type"	Enums(basic, premium, vip)
//	@Param			limit			query		int		false	"Page size (default 50, max 500)"
//	@Param			offset			query		int		false	"Page offset"
//	@Success		200				{object}	membersdk.ListMembersResponse
//	@Failure		400				{object}	membersdk.ErrorResponse
//	@Failure		403				{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		writeBadRequest(w, "limit and offset must be non-negative integers")
		return
	}

	t := domain.MembershipType(r.URL.Query().Get("membership_type"))
	members, err := h.MemberService.ListMembers(r.Context(), t, page)
	if err != nil {
		writeServiceError(w, r, err, "list members")
		return
	}

	at := now(h.Now)
	resp := membersdk.ListMembersResponse{Members: make([]membersdk.MemberResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = toMember(m, at)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleScan resolves a member QR code shown at the front desk.
//
//	@Summary		Scan member QR code
//	@Description	Requires the staff or admin role.
//	@Tags			Members
//	@Produce		json
//	@Param			qr_code	query		string	true	"LUBANA_MEMBER_ code"
//	@Success		200		{object}	membersdk.MemberResponse
//	@Failure		400		{object}	membersdk.ErrorResponse	"Not a member code"
//	@Failure		404		{object}	membersdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/members/scan [get].
func (h *MembersHandler) HandleScan(w http.ResponseWriter, r *http.Request) {
	m, err := h.MemberService.ScanMember(r.Context(), r.URL.Query().Get("qr_code"))
	if err != nil {
		writeServiceError(w, r, err, "scan member")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMember(m, now(h.Now)))
}
