package membersdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest            = "invalid_request"
	ErrorCodeInvalidFormat             = "invalid_format"
	ErrorCodeInvalidPlan               = "invalid_plan"
	ErrorCodeInvalidRole               = "invalid_role"
	ErrorCodeInvalidCredentials        = "invalid_credentials"
	ErrorCodeInvalidToken              = "invalid_token"
	ErrorCodeInsufficientRole          = "insufficient_role"
	ErrorCodeNotFound                  = "not_found"
	ErrorCodeUsernameTaken             = "username_taken"
	ErrorCodeAlreadyActivated          = "already_activated"
	ErrorCodePendingRegistrationExists = "pending_registration_exists"
	ErrorCodeExpired                   = "registration_expired"
	ErrorCodeRoleUpdateFailed          = "role_update_failed"
	ErrorCodeMemberCreationFailed      = "member_creation_failed"
	ErrorCodeRateLimitExceeded         = "rate_limit_exceeded"
	ErrorCodeServerError               = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Description, e.StatusCode)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// parseErrorResponse builds an *APIError from a response body, falling back
// to the status text when the body is not an ErrorResponse.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        er.Error,
		Description: er.ErrorDescription,
	}
}
