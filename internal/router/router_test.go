package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsanTolepov/softwash/internal/auth"
	"github.com/AsanTolepov/softwash/internal/config"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote/remotetest"
	"github.com/AsanTolepov/softwash/internal/service"
	"github.com/AsanTolepov/softwash/internal/session"
	"github.com/AsanTolepov/softwash/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Cache) {
	t.Helper()
	fake := remotetest.New()
	cache := store.New(fake, nil)
	resolver := auth.NewResolver(cache, session.NewFileStore(filepath.Join(t.TempDir(), "session.json")))
	svc := service.New(cache, fake, resolver, nil, nil)

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
	return New(cfg, svc, nil, nil), cache
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/v1/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/v1/auth/login", "", `{"username":"nobody","password":"nothing"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTenantAdministrationFlow(t *testing.T) {
	r, cache := newTestRouter(t)
	superToken := login(t, r, "superadmin", "superadmin")

	// Create a tenant.
	w := do(r, http.MethodPost, "/v1/tenants", superToken,
		`{"name":"CleanWave","login":"cleanwave","password":"cw1234","isEnabled":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tenant struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tenant))

	// The credential pair is write-only in responses.
	assert.NotContains(t, w.Body.String(), "cw1234")

	// The tenant admin can now sign in but cannot reach /v1/tenants.
	adminToken := login(t, r, "cleanwave", "cw1234")
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/v1/tenants", adminToken, "").Code)

	// The superadmin deletes the tenant; it vanishes from the cache.
	assert.Equal(t, http.StatusAccepted,
		do(r, http.MethodDelete, "/v1/tenants/"+tenant.ID, superToken, "").Code)
	_, ok := cache.TenantByID(tenant.ID)
	assert.False(t, ok)
}

func TestPublicIntakeAndTenantScopedReads(t *testing.T) {
	r, cache := newTestRouter(t)
	tenant := cache.AddTenant(model.Tenant{
		Name: "CleanWave", Login: "cleanwave", Password: "cw1234", IsEnabled: true,
	})
	cache.AddTenant(model.Tenant{
		Name: "Other", Login: "other", Password: "other1", IsEnabled: true,
	})

	// Walk-in intake needs no token.
	w := do(r, http.MethodPost, "/v1/public/"+tenant.ID+"/orders", "",
		`{"firstName":"Ali","phone":"+998901112233","itemCount":2,"serviceType":"Kir yuvish","dateIn":"2026-08-30","total":"100000","advance":"30000"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order struct {
		ID      string `json:"id"`
		Payment struct {
			Remaining string `json:"remaining"`
		} `json:"payment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "70000", order.Payment.Remaining)

	// An unknown tenant in the URL is a 404.
	assert.Equal(t, http.StatusNotFound,
		do(r, http.MethodPost, "/v1/public/missing/orders", "",
			`{"firstName":"Ali","phone":"+998901112233","itemCount":1,"serviceType":"x","dateIn":"2026-08-30"}`).Code)

	// The owning admin sees the order; another tenant's admin does not.
	ownToken := login(t, r, "cleanwave", "cw1234")
	otherToken := login(t, r, "other", "other1")

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/orders/"+order.ID, ownToken, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/orders/"+order.ID, otherToken, "").Code)
	assert.Equal(t, http.StatusNotFound,
		do(r, http.MethodPatch, "/v1/orders/"+order.ID+"/status", otherToken, `{"status":"READY"}`).Code)

	// Status progression through the owning session.
	w = do(r, http.MethodPatch, "/v1/orders/"+order.ID+"/status", ownToken, `{"status":"WASHING"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusBadRequest,
		do(r, http.MethodPatch, "/v1/orders/"+order.ID+"/status", ownToken, `{"status":"FOLDED"}`).Code)
}

func TestStaffCapabilityGates(t *testing.T) {
	r, cache := newTestRouter(t)
	tenant := cache.AddTenant(model.Tenant{
		Name: "CleanWave", Login: "cleanwave", Password: "cw1234", IsEnabled: true,
	})
	cache.AddStaff(model.Staff{
		TenantID: tenant.ID, FirstName: "Aziz", Login: "aziz", Password: "aziz123",
		Capabilities: model.CapabilitySet{CanViewOrders: true},
	})

	staffToken := login(t, r, "aziz", "aziz123")

	// Granted capability: orders list works.
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/orders", staffToken, "").Code)
	// Missing capabilities: staff and expenses are denied.
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/v1/staff", staffToken, "").Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/v1/expenses", staffToken, "").Code)
	// Reading settings needs no capability; writing does.
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/settings", staffToken, "").Code)
	assert.Equal(t, http.StatusForbidden,
		do(r, http.MethodPatch, "/v1/settings", staffToken, `{"theme":"dark"}`).Code)
}

func TestNegativeAmountsGetFieldErrors(t *testing.T) {
	r, cache := newTestRouter(t)
	cache.AddTenant(model.Tenant{
		Name: "CleanWave", Login: "cleanwave", Password: "cw1234", IsEnabled: true,
	})
	token := login(t, r, "cleanwave", "cw1234")

	w := do(r, http.MethodPost, "/v1/expenses", token,
		`{"date":"2026-08-29","product":"Kir kukuni","amount":-5}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"Amount":"min"`)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/orders", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/tenants", "", "").Code)
}

func TestMeEchoesSession(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "superadmin", "superadmin")

	w := do(r, http.MethodGet, "/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Type     string `json:"type"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "superadmin", resp.Type)
	assert.Equal(t, "superadmin", resp.Username)
}
