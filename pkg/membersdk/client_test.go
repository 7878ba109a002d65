package membersdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginStartsSession(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/users/login":
			var req LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_ = json.NewEncoder(w).Encode(TokenResponse{
				AccessToken: "tok-" + req.Username,
				TokenType:   "Bearer",
				User:        UserResponse{ID: "u1", Username: req.Username, Role: "guest"},
			})
		case "/v1/users/me":
			require.Equal(t, "Bearer tok-budi", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(UserResponse{ID: "u1", Username: "budi", Role: "guest"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	sess, err := NewClient(srv.URL).Login(t.Context(), "budi", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "tok-budi", sess.AccessToken())
	require.Equal(t, "u1", sess.User().ID)

	me, err := sess.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "budi", me.Username)
}

func TestAPIErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/registrations/validate":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusGone)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeExpired, ErrorDescription: "registration expired"})
		default:
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	sess := client.NewSession("tok", UserResponse{ID: "s1"})

	_, err := sess.ValidateRegistration(t.Context(), "LUBANA_REG_U1000000_1")
	require.True(t, IsCode(err, ErrorCodeExpired))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusGone, apiErr.StatusCode)
	require.Equal(t, "registration_expired: registration expired (HTTP 410)", apiErr.Error())

	_, err = client.Plans(t.Context())
	require.True(t, IsCode(err, ErrorCodeServerError))
	require.ErrorContains(t, err, "Bad Gateway")
}

func TestPageQuery(t *testing.T) {
	t.Parallel()

	require.Empty(t, encode(pageQuery(0, 0)))
	require.Equal(t, "?limit=10&offset=20", encode(pageQuery(10, 20)))
}
