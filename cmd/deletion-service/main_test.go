package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// upstreamStub mimics the portal API's internal deletion endpoint.
func upstreamStub(t *testing.T, serviceKey string, existingID string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || !strings.HasPrefix(r.URL.Path, "/internal/users/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("X-Service-Key") != serviceKey {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Access denied"}`))
			return
		}

		id := strings.TrimPrefix(r.URL.Path, "/internal/users/")
		w.Header().Set("Content-Type", "application/json")
		if id != existingID {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"User not found"}`))
			return
		}
		w.Write([]byte(`{"success":true,"message":"User deleted successfully"}`))
	}))
}

func postDeleteUser(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/delete-user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestDeleteUserSuccess(t *testing.T) {
	upstream := upstreamStub(t, "test-key", "42")
	defer upstream.Close()

	router := newRouter(newDeletionProxy(upstream.URL, "test-key", upstream.Client()))
	rec := postDeleteUser(t, router, `{"userId":"42"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User deleted successfully", resp.Message)
}

func TestDeleteUserMissingUserID(t *testing.T) {
	router := newRouter(newDeletionProxy("http://unused", "test-key", nil))

	for _, body := range []string{`{}`, `{"userId":""}`, `{"userId":"   "}`} {
		rec := postDeleteUser(t, router, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "userId is required")
	}
}

func TestDeleteUserInvalidBody(t *testing.T) {
	router := newRouter(newDeletionProxy("http://unused", "test-key", nil))

	rec := postDeleteUser(t, router, `not-json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestDeleteUserUnknownUserPassesThrough(t *testing.T) {
	upstream := upstreamStub(t, "test-key", "42")
	defer upstream.Close()

	router := newRouter(newDeletionProxy(upstream.URL, "test-key", upstream.Client()))
	rec := postDeleteUser(t, router, `{"userId":"99"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestDeleteUserUpstreamUnreachable(t *testing.T) {
	router := newRouter(newDeletionProxy("http://127.0.0.1:1", "test-key", nil))

	rec := postDeleteUser(t, router, `{"userId":"42"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to delete user")
}

func TestCORSAllowsAnyOriginWithCredentials(t *testing.T) {
	router := newRouter(newDeletionProxy("http://unused", "test-key", nil))

	req := httptest.NewRequest(http.MethodOptions, "/delete-user", nil)
	req.Header.Set("Origin", "https://portal.example.edu")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://portal.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestDeleteUserForwardsServiceKey(t *testing.T) {
	upstream := upstreamStub(t, "right-key", "42")
	defer upstream.Close()

	router := newRouter(newDeletionProxy(upstream.URL, "wrong-key", upstream.Client()))
	rec := postDeleteUser(t, router, `{"userId":"42"}`)

	// The upstream 403 passes through untouched
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, rec.Body.String())
}
