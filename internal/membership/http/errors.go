package http

import (
	"errors"
	"net/http"

	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/membersdk"
	"github.com/lubana/membership/pkg/slogx"
)

type errorMapping struct {
	kind   error
	status int
	code   string
}

// Each service error kind maps to exactly one status and code. Order
// matters only where kinds wrap each other.
var errorMappings = []errorMapping{
	{service.ErrInvalidFormat, http.StatusBadRequest, membersdk.ErrorCodeInvalidFormat},
	{service.ErrInvalidPlan, http.StatusBadRequest, membersdk.ErrorCodeInvalidPlan},
	{service.ErrInvalidRole, http.StatusBadRequest, membersdk.ErrorCodeInvalidRole},
	{service.ErrInvalidUserRequest, http.StatusBadRequest, membersdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, membersdk.ErrorCodeInvalidCredentials},
	{service.ErrNotFound, http.StatusNotFound, membersdk.ErrorCodeNotFound},
	{service.ErrUsernameTaken, http.StatusConflict, membersdk.ErrorCodeUsernameTaken},
	{service.ErrAlreadyActivated, http.StatusConflict, membersdk.ErrorCodeAlreadyActivated},
	{service.ErrPendingRegistrationExists, http.StatusConflict, membersdk.ErrorCodePendingRegistrationExists},
	{service.ErrExpired, http.StatusGone, membersdk.ErrorCodeExpired},
	{service.ErrRoleUpdateFailed, http.StatusInternalServerError, membersdk.ErrorCodeRoleUpdateFailed},
	{service.ErrMemberCreationFailed, http.StatusInternalServerError, membersdk.ErrorCodeMemberCreationFailed},
}

// writeServiceError answers with the status of err's kind. Server side
// failures are logged and their cause is not echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, code := http.StatusInternalServerError, membersdk.ErrorCodeServerError
	for _, m := range errorMappings {
		if errors.Is(err, m.kind) {
			status, code = m.status, m.code
			break
		}
	}

	desc := err.Error()
	if status >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("failed to "+action, "err", err)
		desc = "failed to " + action
	}
	httpx.WriteError(w, status, code, desc)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, membersdk.ErrorCodeInvalidRequest, desc)
}
