// Package auth resolves credentials against the three privilege tiers and
// manages the session lifecycle.
package auth

import (
	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/session"
	"github.com/AsanTolepov/softwash/internal/store"
)

// The superadmin credential pair is a static literal, checked with no rate
// limiting or lockout. Changing this — in either direction — is a product
// decision, not an implementation detail; see DESIGN.md.
const (
	superadminLogin    = "superadmin"
	superadminPassword = "superadmin"
)

// Resolver resolves logins against the cache's current in-memory state,
// never against the remote store directly.
type Resolver struct {
	cache    *store.Cache
	sessions session.Store
}

func NewResolver(cache *store.Cache, sessions session.Store) *Resolver {
	return &Resolver{cache: cache, sessions: sessions}
}

// Login resolves the pair in fixed priority order: superadmin, then tenant
// admin (primary or backup pair, enabled tenants only), then staff. A pair
// valid at a higher tier never falls through to a lower one. On success
// the session is set in the cache and persisted; on no match it returns
// false and no session is created.
func (r *Resolver) Login(identifier, secret string) bool {
	// 1. Superadmin
	if identifier == superadminLogin && secret == superadminPassword {
		r.establish(model.SuperadminSession{Login: identifier})
		return true
	}

	// 2. Tenant admin — disabled tenants never match, either pair.
	for _, t := range r.cache.Tenants() {
		if !t.IsEnabled {
			continue
		}
		primary := t.Login == identifier && t.Password == secret
		backup := t.HasBackupPair() && t.BackupLogin == identifier && t.BackupPassword == secret
		if primary || backup {
			r.establish(model.AdminSession{Tenant: t.ID, TenantName: t.Name, Login: identifier})
			return true
		}
	}

	// 3. Staff — cross-tenant scan, exact pair match.
	for _, s := range r.cache.Staff() {
		if s.Login != identifier || s.Password != secret {
			continue
		}
		tenantName := ""
		if t, ok := r.cache.TenantByID(s.TenantID); ok {
			tenantName = t.Name
		}
		r.establish(model.StaffSession{
			Tenant:       s.TenantID,
			TenantName:   tenantName,
			Login:        identifier,
			StaffID:      s.ID,
			Capabilities: s.Capabilities,
		})
		return true
	}

	return false
}

// Logout clears both the in-memory session and the durable copy.
func (r *Resolver) Logout() {
	r.cache.ClearSession()
	if err := r.sessions.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear stored session")
	}
}

// Current returns the active session, nil when logged out.
func (r *Resolver) Current() model.Session {
	return r.cache.Session()
}

// Restore loads a previously persisted session into the cache at startup.
func (r *Resolver) Restore() {
	s, err := r.sessions.Load()
	if err == session.ErrNoSession {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to restore stored session")
		return
	}
	r.cache.SetSession(s)
}

// RefreshTenantName updates the cached display name of an admin session
// whose tenant was renamed, in memory and in durable storage.
func (r *Resolver) RefreshTenantName(tenantID, name string) {
	current, ok := r.cache.Session().(model.AdminSession)
	if !ok || current.Tenant != tenantID {
		return
	}
	current.TenantName = name
	r.establish(current)
}

// DropTenantSession force-logs-out the active session when it belongs to
// the given tenant. Called by the cascading delete after the remote
// removal has been issued.
func (r *Resolver) DropTenantSession(tenantID string) {
	current := r.cache.Session()
	if current == nil {
		return
	}
	if id, ok := current.TenantID(); ok && id == tenantID {
		r.Logout()
	}
}

func (r *Resolver) establish(s model.Session) {
	r.cache.SetSession(s)
	if err := r.sessions.Save(s); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
	}
}
