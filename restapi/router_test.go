package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	gqlschema "github.com/ortelius/vulnmgt-backend/graphql"
	"github.com/ortelius/vulnmgt-backend/model"
	"github.com/ortelius/vulnmgt-backend/restapi/modules/auth"
	"github.com/ortelius/vulnmgt-backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *store.VulnerabilityStore) {
	t.Helper()

	s := store.NewVulnerabilityStore()
	creds := auth.NewInMemoryCredentialStore(auth.DefaultSeedUsers())

	gqlschema.InitStore(s)
	schema, err := gqlschema.CreateSchema()
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, s, creds, schema)
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, payload
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out model.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{
		Username: "admin", Password: "admin123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out model.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, model.RoleAdmin, out.User.Role)

	claims, err := auth.ValidateJWT(out.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{
		Username: "admin", Password: "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVulnerabilities_RequireAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities", "garbage-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVulnerabilities_CRUDLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	// Create
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/v1/vulnerabilities", adminToken,
		model.CreateVulnerabilityRequest{
			Title:       "XSS on login",
			Description: "Reflected payload in the username field",
			Criticality: "High",
			Cwe:         "CWE-79: Cross-site Scripting (XSS)",
			Status:      model.StatePendingFix,
		})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))

	var created model.Vulnerability
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 1, created.ID)
	assert.Empty(t, created.History)

	// Read back
	resp, body = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fetched model.Vulnerability
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created.Title, fetched.Title)

	// Move through the workflow
	status := model.StateInProgress
	resp, body = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), adminToken,
		model.UpdateVulnerabilityRequest{Status: &status})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	var updated model.Vulnerability
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Len(t, updated.History, 1)
	assert.Equal(t, model.StatePendingFix, updated.History[0].From)
	assert.Equal(t, model.StateInProgress, updated.History[0].To)

	// Delete
	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVulnerabilities_WritesRequireAdmin(t *testing.T) {
	app, s := newTestApp(t)
	userToken := login(t, app, "user", "user123")

	created, err := s.Create(model.CreateVulnerabilityRequest{
		Title: "SSRF in webhook", Status: model.StatePendingFix,
	})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/vulnerabilities", userToken,
		model.CreateVulnerabilityRequest{Title: "x", Status: model.StatePendingFix})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	status := model.StateInProgress
	resp, _ = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), userToken,
		model.UpdateVulnerabilityRequest{Status: &status})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), userToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// reads are fine for the user role
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities", userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestVulnerabilities_BadRequests(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	// empty title
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/vulnerabilities", adminToken,
		model.CreateVulnerabilityRequest{Status: model.StatePendingFix})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// status outside the state set
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/vulnerabilities", adminToken,
		model.CreateVulnerabilityRequest{Title: "x", Status: "Open"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// unparsable JSON must be rejected before reaching the store
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/vulnerabilities", bytes.NewReader([]byte("{not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken)
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, raw.StatusCode)

	// non-numeric id
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities/abc", adminToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// unknown id
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/v1/vulnerabilities/999", adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVulnerabilities_InvalidTransitionRejected(t *testing.T) {
	app, s := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	created, err := s.Create(model.CreateVulnerabilityRequest{
		Title: "Solved finding", Status: model.StateUnderReview,
	})
	require.NoError(t, err)
	solved := model.StateSolved
	_, err = s.Update(created.ID, model.UpdateVulnerabilityRequest{Status: &solved})
	require.NoError(t, err)

	reopen := model.StateInProgress
	resp, body := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/vulnerabilities/%d", created.ID), adminToken,
		model.UpdateVulnerabilityRequest{Status: &reopen})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(body))
}

func TestVulnerabilities_ListFilters(t *testing.T) {
	app, s := newTestApp(t)
	adminToken := login(t, app, "admin", "admin123")

	seed := []model.CreateVulnerabilityRequest{
		{Title: "XSS on login", Criticality: "High", Status: model.StatePendingFix},
		{Title: "Weak ciphers", Criticality: "Medium", Status: model.StateInProgress},
		{Title: "Debug endpoint exposed", Criticality: "Low", Status: model.StatePendingFix},
	}
	for _, req := range seed {
		_, err := s.Create(req)
		require.NoError(t, err)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities?criticality=High", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []model.Vulnerability
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "XSS on login", list[0].Title)

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities?search=xss", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)

	resp, body = doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities?status=Pending%20Fix", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 2)
}

func TestVulnerabilities_StatesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	userToken := login(t, app, "user", "user123")

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/v1/vulnerabilities/states", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out model.StatesResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.States, 6)
	assert.Empty(t, out.Transitions[model.StateSolved])
	assert.Contains(t, out.Transitions[model.StatePendingFix], model.StateInProgress)
}

func TestAuthMe(t *testing.T) {
	app, _ := newTestApp(t)
	userToken := login(t, app, "user", "user123")

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/v1/auth/me", userToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "user", out["username"])
	assert.Equal(t, model.RoleUser, out["role"])
}

func TestGraphQL_VulnerabilitiesQuery(t *testing.T) {
	app, s := newTestApp(t)
	userToken := login(t, app, "user", "user123")

	_, err := s.Create(model.CreateVulnerabilityRequest{
		Title: "SQL injection in search", Criticality: "High", Status: model.StatePendingFix,
	})
	require.NoError(t, err)

	query := map[string]interface{}{
		"query": `{ vulnerabilities(criticality: "High") { id title status } }`,
	}
	resp, body := doJSON(t, app, fiber.MethodPost, "/api/v1/graphql", userToken, query)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out struct {
		Data struct {
			Vulnerabilities []struct {
				ID     int    `json:"id"`
				Title  string `json:"title"`
				Status string `json:"status"`
			} `json:"vulnerabilities"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Data.Vulnerabilities, 1)
	assert.Equal(t, "SQL injection in search", out.Data.Vulnerabilities[0].Title)
	assert.Equal(t, model.StatePendingFix, out.Data.Vulnerabilities[0].Status)

	// unauthenticated GraphQL is rejected like the REST routes
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/graphql", "", query)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
