// Package store holds the in-memory authoritative copies of every entity
// collection plus the current session. Every read the application performs
// comes from here; nothing re-queries the remote store directly.
//
// Mutations apply to memory synchronously and persist to the remote store
// asynchronously, fire-and-forget. A remote failure never blocks or
// reverts the local change — responsiveness over strict consistency.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote"
	"github.com/AsanTolepov/softwash/internal/seed"
)

// ErrorSink receives failures of fire-and-forget remote operations. The
// default sink logs and drops them; tests inject their own to assert on
// the swallow-and-log policy.
type ErrorSink func(op string, err error)

// LogSink is the default ErrorSink.
func LogSink(op string, err error) {
	log.Error().Str("op", op).Err(err).Msg("remote write failed; local state kept")
}

// Cache is the local authoritative store.
type Cache struct {
	mu     sync.RWMutex
	remote remote.Store
	sink   ErrorSink

	tenants  []model.Tenant
	orders   []model.Order
	staff    []model.Staff
	expenses []model.Expense
	settings model.Settings
	session  model.Session
}

// New builds an empty cache around a remote store. A nil sink falls back
// to LogSink.
func New(r remote.Store, sink ErrorSink) *Cache {
	if sink == nil {
		sink = LogSink
	}
	return &Cache{
		remote:   r,
		sink:     sink,
		settings: model.DefaultSettings(),
	}
}

// ── Initial load ─────────────────────────────────────────────────────────

// Load seeds the cache from the remote store, or — when a remote
// collection is empty — seeds the remote store from the bundled defaults
// (write-through). Runs once per application lifetime. Per-collection
// failures go to the sink and leave that collection empty; Load itself
// never fails.
func (c *Cache) Load(ctx context.Context) {
	tenants := loadOrSeed(ctx, c, remote.CollectionTenants, seed.Tenants(),
		func(t model.Tenant) string { return t.ID })
	orders := loadOrSeed(ctx, c, remote.CollectionOrders, seed.Orders(),
		func(o model.Order) string { return o.ID })
	staff := loadOrSeed(ctx, c, remote.CollectionStaff, seed.Staff(),
		func(s model.Staff) string { return s.ID })
	expenses := loadOrSeed(ctx, c, remote.CollectionExpenses, seed.Expenses(),
		func(e model.Expense) string { return e.ID })
	settings := c.loadSettings(ctx)

	c.mu.Lock()
	c.tenants = tenants
	c.orders = orders
	c.staff = staff
	c.expenses = expenses
	c.settings = settings
	c.mu.Unlock()
}

// loadOrSeed applies the seed-if-empty rule to one collection. A non-empty
// remote collection is taken verbatim — no merge with defaults.
func loadOrSeed[T any](ctx context.Context, c *Cache, collection string, defaults []T, idOf func(T) string) []T {
	docs, err := c.remote.LoadCollection(ctx, collection)
	if err != nil {
		c.sink("load "+collection, err)
		return nil
	}
	if len(docs) == 0 {
		for _, item := range defaults {
			if err := c.remote.PutDocument(ctx, collection, idOf(item), item); err != nil {
				c.sink("seed "+collection, err)
			}
		}
		return defaults
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal(doc, &item); err != nil {
			c.sink("decode "+collection, err)
			continue
		}
		out = append(out, item)
	}
	return out
}

func (c *Cache) loadSettings(ctx context.Context) model.Settings {
	settings := model.DefaultSettings()
	raw, err := c.remote.LoadDocument(ctx, remote.CollectionMeta, remote.SettingsDocID)
	switch {
	case err == remote.ErrNotFound:
		if err := c.remote.PutDocument(ctx, remote.CollectionMeta, remote.SettingsDocID, settings); err != nil {
			c.sink("seed settings", err)
		}
	case err != nil:
		c.sink("load settings", err)
	default:
		// Unmarshal over the defaults so fields missing from older
		// documents keep their default values.
		if err := json.Unmarshal(raw, &settings); err != nil {
			c.sink("decode settings", err)
			settings = model.DefaultSettings()
		}
	}
	return settings
}

// async runs a remote write in the background. The caller has already
// applied the local change and does not wait; failures go to the sink.
func (c *Cache) async(op string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			c.sink(op, err)
		}
	}()
}

// ── Tenants ──────────────────────────────────────────────────────────────

func (c *Cache) Tenants() []model.Tenant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Tenant, len(c.tenants))
	copy(out, c.tenants)
	return out
}

func (c *Cache) TenantByID(id string) (model.Tenant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tenants {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tenant{}, false
}

// AddTenant assigns an id, appends, and persists asynchronously. The
// fully-formed tenant returns synchronously so the caller can reference it
// before the remote write lands.
func (c *Cache) AddTenant(t model.Tenant) model.Tenant {
	t.ID = newID("tenant")
	c.mu.Lock()
	c.tenants = append(c.tenants, t)
	c.mu.Unlock()

	c.async("put tenant", func(ctx context.Context) error {
		return c.remote.PutDocument(ctx, remote.CollectionTenants, t.ID, t)
	})
	return t
}

func (c *Cache) UpdateTenant(id string, p model.TenantPatch) (model.Tenant, bool) {
	c.mu.Lock()
	var updated model.Tenant
	found := false
	for i := range c.tenants {
		if c.tenants[i].ID != id {
			continue
		}
		mergeTenant(&c.tenants[i], p)
		updated = c.tenants[i]
		found = true
		break
	}
	c.mu.Unlock()
	if !found {
		return model.Tenant{}, false
	}

	c.async("patch tenant", func(ctx context.Context) error {
		return c.remote.PatchDocument(ctx, remote.CollectionTenants, id, p.Doc())
	})
	return updated, true
}

// PurgeTenant removes the tenant and every dependent order, staff member
// and expense from memory in one coordinated step, before any remote call
// is issued. The remote side of the cascade is the mutation pipeline's
// job.
func (c *Cache) PurgeTenant(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	kept := c.tenants[:0]
	for _, t := range c.tenants {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	c.tenants = kept

	orders := c.orders[:0]
	for _, o := range c.orders {
		if o.TenantID != id {
			orders = append(orders, o)
		}
	}
	c.orders = orders

	staff := c.staff[:0]
	for _, s := range c.staff {
		if s.TenantID != id {
			staff = append(staff, s)
		}
	}
	c.staff = staff

	expenses := c.expenses[:0]
	for _, e := range c.expenses {
		if e.TenantID != id {
			expenses = append(expenses, e)
		}
	}
	c.expenses = expenses

	return found
}

// ── Orders ───────────────────────────────────────────────────────────────

func (c *Cache) Orders() []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Cache) OrderByID(id string) (model.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, o := range c.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// OrdersByTenant filters in memory; the result is recomputed per call.
func (c *Cache) OrdersByTenant(tenantID string) []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []model.Order
	for _, o := range c.orders {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out
}

// AddOrder assigns the order code and creation time, prepends (newest
// first), and persists asynchronously.
func (c *Cache) AddOrder(o model.Order) model.Order {
	o.ID = newOrderCode()
	o.CreatedAt = time.Now().UTC()
	c.mu.Lock()
	c.orders = append([]model.Order{o}, c.orders...)
	c.mu.Unlock()

	c.async("put order", func(ctx context.Context) error {
		return c.remote.PutDocument(ctx, remote.CollectionOrders, o.ID, o)
	})
	return o
}

func (c *Cache) UpdateOrder(id string, p model.OrderPatch) (model.Order, bool) {
	c.mu.Lock()
	var updated model.Order
	found := false
	for i := range c.orders {
		if c.orders[i].ID != id {
			continue
		}
		mergeOrder(&c.orders[i], p)
		updated = c.orders[i]
		found = true
		break
	}
	c.mu.Unlock()
	if !found {
		return model.Order{}, false
	}

	c.async("patch order", func(ctx context.Context) error {
		return c.remote.PatchDocument(ctx, remote.CollectionOrders, id, p.Doc())
	})
	return updated, true
}

func (c *Cache) DeleteOrder(id string) {
	c.mu.Lock()
	kept := c.orders[:0]
	for _, o := range c.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	c.orders = kept
	c.mu.Unlock()

	c.async("delete order", func(ctx context.Context) error {
		return c.remote.DeleteDocument(ctx, remote.CollectionOrders, id)
	})
}

// ── Staff ────────────────────────────────────────────────────────────────

func (c *Cache) Staff() []model.Staff {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Staff, len(c.staff))
	copy(out, c.staff)
	return out
}

func (c *Cache) StaffByID(id string) (model.Staff, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.staff {
		if s.ID == id {
			return s, true
		}
	}
	return model.Staff{}, false
}

func (c *Cache) StaffByTenant(tenantID string) []model.Staff {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []model.Staff
	for _, s := range c.staff {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out
}

func (c *Cache) AddStaff(s model.Staff) model.Staff {
	s.ID = newID("emp")
	if s.Attendance == nil {
		s.Attendance = []string{}
	}
	c.mu.Lock()
	c.staff = append(c.staff, s)
	c.mu.Unlock()

	c.async("put staff", func(ctx context.Context) error {
		return c.remote.PutDocument(ctx, remote.CollectionStaff, s.ID, s)
	})
	return s
}

func (c *Cache) UpdateStaff(id string, p model.StaffPatch) (model.Staff, bool) {
	c.mu.Lock()
	var updated model.Staff
	found := false
	for i := range c.staff {
		if c.staff[i].ID != id {
			continue
		}
		mergeStaff(&c.staff[i], p)
		updated = c.staff[i]
		found = true
		break
	}
	c.mu.Unlock()
	if !found {
		return model.Staff{}, false
	}

	c.async("patch staff", func(ctx context.Context) error {
		return c.remote.PatchDocument(ctx, remote.CollectionStaff, id, p.Doc())
	})
	return updated, true
}

func (c *Cache) DeleteStaff(id string) {
	c.mu.Lock()
	kept := c.staff[:0]
	for _, s := range c.staff {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	c.staff = kept
	c.mu.Unlock()

	c.async("delete staff", func(ctx context.Context) error {
		return c.remote.DeleteDocument(ctx, remote.CollectionStaff, id)
	})
}

// ── Expenses ─────────────────────────────────────────────────────────────

func (c *Cache) Expenses() []model.Expense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Expense, len(c.expenses))
	copy(out, c.expenses)
	return out
}

func (c *Cache) ExpensesByTenant(tenantID string) []model.Expense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []model.Expense
	for _, e := range c.expenses {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out
}

func (c *Cache) AddExpense(e model.Expense) model.Expense {
	e.ID = newID("exp")
	c.mu.Lock()
	c.expenses = append([]model.Expense{e}, c.expenses...)
	c.mu.Unlock()

	c.async("put expense", func(ctx context.Context) error {
		return c.remote.PutDocument(ctx, remote.CollectionExpenses, e.ID, e)
	})
	return e
}

func (c *Cache) UpdateExpense(id string, p model.ExpensePatch) (model.Expense, bool) {
	c.mu.Lock()
	var updated model.Expense
	found := false
	for i := range c.expenses {
		if c.expenses[i].ID != id {
			continue
		}
		mergeExpense(&c.expenses[i], p)
		updated = c.expenses[i]
		found = true
		break
	}
	c.mu.Unlock()
	if !found {
		return model.Expense{}, false
	}

	c.async("patch expense", func(ctx context.Context) error {
		return c.remote.PatchDocument(ctx, remote.CollectionExpenses, id, p.Doc())
	})
	return updated, true
}

func (c *Cache) DeleteExpense(id string) {
	c.mu.Lock()
	kept := c.expenses[:0]
	for _, e := range c.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.expenses = kept
	c.mu.Unlock()

	c.async("delete expense", func(ctx context.Context) error {
		return c.remote.DeleteDocument(ctx, remote.CollectionExpenses, id)
	})
}

// ── Settings ─────────────────────────────────────────────────────────────

func (c *Cache) Settings() model.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Cache) UpdateSettings(p model.SettingsPatch) model.Settings {
	c.mu.Lock()
	mergeSettings(&c.settings, p)
	merged := c.settings
	c.mu.Unlock()

	c.async("patch settings", func(ctx context.Context) error {
		return c.remote.PatchDocument(ctx, remote.CollectionMeta, remote.SettingsDocID, p.Doc())
	})
	return merged
}

// ── Session ──────────────────────────────────────────────────────────────

// Session returns the current session, nil when logged out.
func (c *Cache) Session() model.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Cache) SetSession(s model.Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (c *Cache) ClearSession() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}
