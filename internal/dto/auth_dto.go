package dto

import "github.com/AsanTolepov/softwash/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"`
	Session   SessionResponse `json:"session"`
}

// SessionResponse flattens the session union for clients; only the fields
// relevant to the tier are populated.
type SessionResponse struct {
	Type         model.Tier           `json:"type"`
	Username     string               `json:"username"`
	TenantID     string               `json:"tenantId,omitempty"`
	TenantName   string               `json:"tenantName,omitempty"`
	StaffID      string               `json:"staffId,omitempty"`
	Capabilities *model.CapabilitySet `json:"capabilities,omitempty"`
}

func NewSessionResponse(s model.Session) SessionResponse {
	switch v := s.(type) {
	case model.AdminSession:
		return SessionResponse{Type: model.TierAdmin, Username: v.Login, TenantID: v.Tenant, TenantName: v.TenantName}
	case model.StaffSession:
		caps := v.Capabilities
		return SessionResponse{
			Type: model.TierStaff, Username: v.Login, TenantID: v.Tenant,
			TenantName: v.TenantName, StaffID: v.StaffID, Capabilities: &caps,
		}
	default:
		return SessionResponse{Type: model.TierSuperadmin, Username: s.Username()}
	}
}
