package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plate-auction/internal/auth"
	bids "plate-auction/internal/bidService"
	"plate-auction/internal/hub"
	plates "plate-auction/internal/plateService"
	"plate-auction/internal/repository"
	"plate-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// testEnv bundles the router with the live hub so websocket tests can
// reach both.
type testEnv struct {
	Router *gin.Engine
	Hub    *hub.Hub
}

// SetupTestEnv wires the full application against the in-memory store.
func SetupTestEnv() testEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	liveHub := hub.NewHub()
	events := hub.NewEvents(liveHub)

	authService := auth.NewAuthService(repo, []byte(testSecret), time.Hour)
	plateService := plates.NewPlateService(repo, events)
	bidService := bids.NewBidService(repo, events)

	return testEnv{
		Router: server.SetupRouter(authService, plateService, bidService, liveHub),
		Hub:    liveHub,
	}
}

// ExecuteRequest executes an HTTP request with an optional bearer token and
// returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseData unmarshals the response envelope and returns its data field.
func ParseData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %s", w.Body.String())
	return data
}

// ParseDataList unmarshals the response envelope and returns its data field
// as a list.
func ParseDataList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, ok := resp["data"].([]any)
	require.True(t, ok, "response data is not a list: %s", w.Body.String())
	return data
}

// RegisterAndLogin creates an account through the API and returns its bearer token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username string, isStaff bool) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/users", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret",
		"is_staff": isStaff,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ExecuteRequest(t, router, http.MethodPost, "/auth/login", "", map[string]any{
		"username": username,
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return ParseData(t, w)["access_token"].(string)
}

// CreatePlate creates a listing as staff and returns its id.
func CreatePlate(t *testing.T, router *gin.Engine, staffToken, number string) int64 {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/plates", staffToken, map[string]any{
		"plate_number": number,
		"description":  "listing " + number,
		"deadline":     time.Now().UTC().Add(72 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return int64(ParseData(t, w)["id"].(float64))
}
