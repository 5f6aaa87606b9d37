package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsanTolepov/softwash/internal/model"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedServer(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{SessionAuth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tier": GetSession(c).Tier()})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthRoundTrip(t *testing.T) {
	sessions := []model.Session{
		model.SuperadminSession{Login: "superadmin"},
		model.AdminSession{Tenant: "tenant-1", TenantName: "CleanWave", Login: "cleanwave"},
		model.StaffSession{
			Tenant: "tenant-1", TenantName: "CleanWave", Login: "aziz", StaffID: "emp-1",
			Capabilities: model.CapabilitySet{CanViewOrders: true},
		},
	}

	r := gin.New()
	r.GET("/protected", SessionAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, GetSession(c))
	})

	for _, s := range sessions {
		token, err := IssueToken(s, testSecret, time.Hour)
		require.NoError(t, err)

		w := get(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSessionAuthRehydratesStaffCapabilities(t *testing.T) {
	token, err := IssueToken(model.StaffSession{
		Tenant: "tenant-1", Login: "aziz", StaffID: "emp-1",
		Capabilities: model.CapabilitySet{CanViewOrders: true},
	}, testSecret, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	var got model.Session
	r.GET("/protected", SessionAuth(testSecret), func(c *gin.Context) {
		got = GetSession(c)
		c.Status(http.StatusOK)
	})

	require.Equal(t, http.StatusOK, get(r, token).Code)
	staff, ok := got.(model.StaffSession)
	require.True(t, ok)
	assert.True(t, staff.Capabilities.CanViewOrders)
	assert.False(t, staff.Capabilities.CanViewStaff)
	assert.Equal(t, "emp-1", staff.StaffID)
}

func TestSessionAuthRejectsBadTokens(t *testing.T) {
	r := protectedServer()

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)

	// Valid shape, wrong key.
	forged, err := IssueToken(model.SuperadminSession{Login: "superadmin"}, "other-secret", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, forged).Code)

	// Expired.
	expired, err := IssueToken(model.SuperadminSession{Login: "superadmin"}, testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, expired).Code)
}

func TestRequireTier(t *testing.T) {
	r := protectedServer(RequireTier(model.TierSuperadmin))

	admin, err := IssueToken(model.AdminSession{Tenant: "t", Login: "a"}, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, admin).Code)

	super, err := IssueToken(model.SuperadminSession{Login: "superadmin"}, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, super).Code)
}

func TestRequireCapability(t *testing.T) {
	r := protectedServer(RequireCapability(model.CapViewOrders))

	// Admin and superadmin bypass the capability check.
	for _, s := range []model.Session{
		model.SuperadminSession{Login: "superadmin"},
		model.AdminSession{Tenant: "t", Login: "a"},
	} {
		token, err := IssueToken(s, testSecret, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, get(r, token).Code)
	}

	// Staff with the flag passes; without it, denied.
	granted, err := IssueToken(model.StaffSession{
		Tenant: "t", Login: "s", Capabilities: model.CapabilitySet{CanViewOrders: true},
	}, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, granted).Code)

	denied, err := IssueToken(model.StaffSession{Tenant: "t", Login: "s"}, testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, denied).Code)
}
