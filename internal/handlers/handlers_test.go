package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientapi/internal/models"
	"clientapi/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clientService := services.NewClientService(2, 10*time.Millisecond)
	clientService.Progress = nil

	r := gin.New()
	root := NewRootHandler()
	r.GET("/", root.Welcome)
	r.GET("/healthz", root.Health)
	r.GET(RedocPath, root.Redoc)
	r.GET("/users/:user_id", NewUserHandler(services.NewUserService()).GetUserByID)
	r.GET("/clients/:client_id/objects", NewClientHandler(clientService).GetObjects)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestWelcome(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Welcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Welcome to the client objects API!", body.Message)
	assert.Equal(t, "/docs", body.Docs)
	assert.Equal(t, "/redoc", body.Redoc)
}

func TestHealth(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRedoc(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/redoc")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `spec-url="/docs/doc.json"`)
}

func TestGetUserByID(t *testing.T) {
	r := newTestRouter(t)

	for _, id := range []string{"0", "1", "42", "-3", "2147483647", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			rec := doGet(t, r, "/users/"+id)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"userId":`+id+`,"title":"Engr.","firstName":"Bryce","lastName":"Hernandez"}`,
				rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"userId":`+id+`,`)
		})
	}
}

// Identifiers have no upper bound: values past 64 bits are echoed digit for digit.
func TestLargeIdentifiersEchoed(t *testing.T) {
	r := newTestRouter(t)
	const huge = "123456789012345678901234567890"

	rec := doGet(t, r, "/users/"+huge)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":`+huge+`,`)

	rec = doGet(t, r, "/clients/"+huge+"/objects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientId":`+huge+`,`)

	var body models.ClientObjects
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, json.Number(huge), body.ClientID)
}

func TestIdentifiersCanonicalised(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/users/+007")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":7,`)
}

func TestInvalidIdentifiers(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		path string
		want string
	}{
		{"/users/abc", "invalid user_id"},
		{"/users/1.5", "invalid user_id"},
		{"/users/1e3", "invalid user_id"},
		{"/users/1_000", "invalid user_id"},
		{"/users/0x10", "invalid user_id"},
		{"/clients/abc/objects", "invalid client_id"},
		{"/clients/4x/objects", "invalid client_id"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doGet(t, r, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestGetObjects(t *testing.T) {
	rec := doGet(t, newTestRouter(t), "/clients/42/objects")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.ElementsMatch(t, []string{"clientId", "contact_details", "assets", "pensions"}, keys(raw))

	var body models.ClientObjects
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, json.Number("42"), body.ClientID)
	assert.Len(t, body.Assets, 3)
	assert.Len(t, body.Pensions, 2)
}

func TestGetObjects_Idempotent(t *testing.T) {
	r := newTestRouter(t)

	first := doGet(t, r, "/clients/8/objects")
	second := doGet(t, r, "/clients/8/objects")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
