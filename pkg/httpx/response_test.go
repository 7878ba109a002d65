package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lubana/membership/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	decode := func(payload string) (body, error) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &b)
		return b, err
	}

	b, err := decode(`{"name":"alice"}`)
	require.NoError(t, err)
	require.Equal(t, "alice", b.Name)

	_, err = decode(`{"name":"alice","extra":1}`)
	require.Error(t, err)

	_, err = decode(`{"name":"a"}{"name":"b"}`)
	require.Error(t, err)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteError(rec, http.StatusGone, "expired", "registration expired")

	require.Equal(t, http.StatusGone, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"error":"expired","error_description":"registration expired"}`, rec.Body.String())
}
