package model

import (
	"encoding/json"
	"fmt"
)

// Tier is a session privilege level.
type Tier string

const (
	TierSuperadmin Tier = "superadmin"
	TierAdmin      Tier = "admin"
	TierStaff      Tier = "staff"
)

// Session is the identity resolved after login. It is a closed union of
// exactly three shapes so downstream code cannot read a staff-only field
// off a superadmin session.
type Session interface {
	Tier() Tier
	// Username is the login identifier the session was created with.
	Username() string
	// TenantID returns the owning tenant id; ok is false for superadmin.
	TenantID() (id string, ok bool)
}

// SuperadminSession has cross-tenant rights and no tenant scope.
type SuperadminSession struct {
	Login string `json:"username"`
}

func (s SuperadminSession) Tier() Tier               { return TierSuperadmin }
func (s SuperadminSession) Username() string         { return s.Login }
func (s SuperadminSession) TenantID() (string, bool) { return "", false }

// AdminSession is a tenant owner signed in with the tenant's primary or
// backup credential pair.
type AdminSession struct {
	Tenant     string `json:"tenantId"`
	TenantName string `json:"tenantName"`
	Login      string `json:"username"`
}

func (s AdminSession) Tier() Tier               { return TierAdmin }
func (s AdminSession) Username() string         { return s.Login }
func (s AdminSession) TenantID() (string, bool) { return s.Tenant, true }

// StaffSession is a capability-gated employee session.
type StaffSession struct {
	Tenant       string        `json:"tenantId"`
	TenantName   string        `json:"tenantName"`
	Login        string        `json:"username"`
	StaffID      string        `json:"staffId"`
	Capabilities CapabilitySet `json:"capabilities"`
}

func (s StaffSession) Tier() Tier               { return TierStaff }
func (s StaffSession) Username() string         { return s.Login }
func (s StaffSession) TenantID() (string, bool) { return s.Tenant, true }

// sessionEnvelope is the serialized form: the union flattened under a
// type discriminator. Only the fields relevant to the tier are populated.
type sessionEnvelope struct {
	Type         Tier           `json:"type"`
	TenantID     string         `json:"tenantId,omitempty"`
	TenantName   string         `json:"tenantName,omitempty"`
	Username     string         `json:"username,omitempty"`
	StaffID      string         `json:"staffId,omitempty"`
	Capabilities *CapabilitySet `json:"capabilities,omitempty"`
}

// EncodeSession serializes a session for durable storage.
func EncodeSession(s Session) ([]byte, error) {
	var env sessionEnvelope
	switch v := s.(type) {
	case SuperadminSession:
		env = sessionEnvelope{Type: TierSuperadmin, Username: v.Login}
	case AdminSession:
		env = sessionEnvelope{Type: TierAdmin, TenantID: v.Tenant, TenantName: v.TenantName, Username: v.Login}
	case StaffSession:
		caps := v.Capabilities
		env = sessionEnvelope{
			Type: TierStaff, TenantID: v.Tenant, TenantName: v.TenantName,
			Username: v.Login, StaffID: v.StaffID, Capabilities: &caps,
		}
	default:
		return nil, fmt.Errorf("session: unknown tier %T", s)
	}
	return json.Marshal(env)
}

// DecodeSession reverses EncodeSession.
func DecodeSession(data []byte) (Session, error) {
	var env sessionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	switch env.Type {
	case TierSuperadmin:
		return SuperadminSession{Login: env.Username}, nil
	case TierAdmin:
		return AdminSession{Tenant: env.TenantID, TenantName: env.TenantName, Login: env.Username}, nil
	case TierStaff:
		var caps CapabilitySet
		if env.Capabilities != nil {
			caps = *env.Capabilities
		}
		return StaffSession{
			Tenant: env.TenantID, TenantName: env.TenantName,
			Login: env.Username, StaffID: env.StaffID, Capabilities: caps,
		}, nil
	default:
		return nil, fmt.Errorf("session: unknown tier %q", env.Type)
	}
}
