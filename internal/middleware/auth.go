package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/model"
)

const sessionKey = "session"

// SessionClaims embed the session union, flattened, in every bearer token.
// The token is a transport detail of the HTTP surface; tier resolution
// itself happens only in the auth resolver at login time.
type SessionClaims struct {
	Type         model.Tier           `json:"type"`
	TenantID     string               `json:"tenantId,omitempty"`
	TenantName   string               `json:"tenantName,omitempty"`
	Username     string               `json:"username,omitempty"`
	StaffID      string               `json:"staffId,omitempty"`
	Capabilities *model.CapabilitySet `json:"capabilities,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken serializes a session into a signed bearer token.
func IssueToken(s model.Session, secret string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Type:     s.Tier(),
		Username: s.Username(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	switch v := s.(type) {
	case model.AdminSession:
		claims.TenantID = v.Tenant
		claims.TenantName = v.TenantName
	case model.StaffSession:
		claims.TenantID = v.Tenant
		claims.TenantName = v.TenantName
		claims.StaffID = v.StaffID
		caps := v.Capabilities
		claims.Capabilities = &caps
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (c SessionClaims) session() model.Session {
	switch c.Type {
	case model.TierAdmin:
		return model.AdminSession{Tenant: c.TenantID, TenantName: c.TenantName, Login: c.Username}
	case model.TierStaff:
		var caps model.CapabilitySet
		if c.Capabilities != nil {
			caps = *c.Capabilities
		}
		return model.StaffSession{
			Tenant: c.TenantID, TenantName: c.TenantName,
			Login: c.Username, StaffID: c.StaffID, Capabilities: caps,
		}
	default:
		return model.SuperadminSession{Login: c.Username}
	}
}

// SessionAuth validates the Bearer token on every protected route and
// re-hydrates the session union into the request context.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("token invalid or expired"))
			return
		}

		c.Set(sessionKey, claims.session())
		c.Next()
	}
}

// GetSession retrieves the typed session from the Gin context, nil on
// routes outside the auth chain.
func GetSession(c *gin.Context) model.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(model.Session)
	return s
}

// RequireTier rejects requests whose session tier is not in the list.
func RequireTier(tiers ...model.Tier) gin.HandlerFunc {
	allowed := make(map[model.Tier]bool, len(tiers))
	for _, t := range tiers {
		allowed[t] = true
	}
	return func(c *gin.Context) {
		s := GetSession(c)
		if s == nil || !allowed[s.Tier()] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient privileges"))
			return
		}
		c.Next()
	}
}

// RequireCapability gates staff sessions on a capability flag,
// deny-by-default. Superadmin and admin sessions pass unconditionally.
func RequireCapability(cap model.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch s := GetSession(c).(type) {
		case model.SuperadminSession, model.AdminSession:
			c.Next()
		case model.StaffSession:
			if !s.Capabilities.Allows(cap) {
				c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient privileges"))
				return
			}
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient privileges"))
		}
	}
}
