package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote"
)

func TestCreateTenantValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateTenant(model.Tenant{Login: "x", Password: "x"})
	assert.ErrorIs(t, err, ErrTenantNameRequired)

	_, err = f.svc.CreateTenant(model.Tenant{Name: "X"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	_, err = f.svc.CreateTenant(model.Tenant{Name: "X", Login: "x"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestCreateTenantLoginUniqueAmongEnabled(t *testing.T) {
	f := newFixture(t)
	f.addTenant(t, "First", "shared")

	_, err := f.svc.CreateTenant(model.Tenant{
		Name: "Second", Login: "shared", Password: "pw", IsEnabled: true,
	})
	assert.ErrorIs(t, err, ErrLoginTaken)

	// A disabled tenant may reuse the login.
	_, err = f.svc.CreateTenant(model.Tenant{
		Name: "Dormant", Login: "shared", Password: "pw", IsEnabled: false,
	})
	assert.NoError(t, err)
}

func TestCreateTenantReusesDisabledTenantsLogin(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateTenant(model.Tenant{
		Name: "Old", Login: "legacy", Password: "pw", IsEnabled: false,
	})
	require.NoError(t, err)

	// The login of a disabled tenant does not block a new enabled one.
	_, err = f.svc.CreateTenant(model.Tenant{
		Name: "New", Login: "legacy", Password: "pw", IsEnabled: true,
	})
	assert.NoError(t, err)
}

func TestUpdateTenantRenameRefreshesAdminSession(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "Before", "owner")
	require.True(t, f.resolver.Login("owner", "owner123"))

	name := "After"
	_, err := f.svc.UpdateTenant(tenant.ID, model.TenantPatch{Name: &name})
	require.NoError(t, err)

	admin, ok := f.resolver.Current().(model.AdminSession)
	require.True(t, ok)
	assert.Equal(t, "After", admin.TenantName)
}

func TestUpdateTenantLoginCollision(t *testing.T) {
	f := newFixture(t)
	f.addTenant(t, "First", "first")
	second := f.addTenant(t, "Second", "second")

	login := "first"
	_, err := f.svc.UpdateTenant(second.ID, model.TenantPatch{Login: &login})
	assert.ErrorIs(t, err, ErrLoginTaken)

	// Re-submitting a tenant's own login is not a collision.
	own := "second"
	_, err = f.svc.UpdateTenant(second.ID, model.TenantPatch{Login: &own})
	assert.NoError(t, err)
}

func TestUpdateTenantNotFound(t *testing.T) {
	f := newFixture(t)
	name := "x"
	_, err := f.svc.UpdateTenant("missing", model.TenantPatch{Name: &name})
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestDeleteTenantCascadesLocallyBeforeRemote(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "Doomed", "doomed")
	other := f.addTenant(t, "Bystander", "bystander")

	order, err := f.svc.CreateOrder(OrderIntake{
		TenantID: tenant.ID,
		Customer: model.Customer{FirstName: "Ali", Phone: "+998901112233"},
		Details:  model.OrderDetails{ItemCount: 1},
		Total:    decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	staff, err := f.svc.CreateStaff(context.Background(), StaffInput{
		TenantID: tenant.ID, FirstName: "A", Login: "a", Password: "a1",
	})
	require.NoError(t, err)
	expense, err := f.svc.CreateExpense(context.Background(), ExpenseInput{
		TenantID: tenant.ID, Product: "Kir kukuni", Amount: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)
	keeper, err := f.svc.CreateOrder(OrderIntake{
		TenantID: other.ID,
		Customer: model.Customer{FirstName: "Vali", Phone: "+998907654321"},
		Details:  model.OrderDetails{ItemCount: 1},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTenant(tenant.ID))

	// Synchronously: the tenant and every dependent are already gone
	// from the local view.
	_, ok := f.cache.TenantByID(tenant.ID)
	assert.False(t, ok)
	assert.Empty(t, f.cache.OrdersByTenant(tenant.ID))
	assert.Empty(t, f.cache.StaffByTenant(tenant.ID))
	assert.Empty(t, f.cache.ExpensesByTenant(tenant.ID))

	// The other tenant is untouched.
	_, ok = f.cache.TenantByID(other.ID)
	assert.True(t, ok)
	assert.Len(t, f.cache.OrdersByTenant(other.ID), 1)

	// Eventually: the remote documents disappear too.
	require.Eventually(t, func() bool {
		return !f.remote.Has(remote.CollectionTenants, tenant.ID) &&
			!f.remote.Has(remote.CollectionOrders, order.ID) &&
			!f.remote.Has(remote.CollectionStaff, staff.ID) &&
			!f.remote.Has(remote.CollectionExpenses, expense.ID)
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, f.remote.Has(remote.CollectionOrders, keeper.ID))
}

func TestDeleteTenantForcesOwnSessionLogout(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "SelfDelete", "selfdelete")
	require.True(t, f.resolver.Login("selfdelete", "selfdelete123"))

	require.NoError(t, f.svc.DeleteTenant(tenant.ID))

	require.Eventually(t, func() bool {
		return f.resolver.Current() == nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDeleteTenantRemoteFailureKeepsSession(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "Sticky", "sticky")
	require.True(t, f.resolver.Login("sticky", "sticky123"))

	f.remote.DeleteErr = errProxyDown
	require.NoError(t, f.svc.DeleteTenant(tenant.ID))

	// The failure goes to the sink; the session is not dropped.
	require.Eventually(t, func() bool { return f.sink.count() > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.NotNil(t, f.resolver.Current())

	// Locally the tenant is still gone — the optimistic removal stands.
	_, ok := f.cache.TenantByID(tenant.ID)
	assert.False(t, ok)
}

func TestDeleteTenantNotFound(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.DeleteTenant("missing"), ErrTenantNotFound)
}

func TestDeleteTenantSuperadminSessionSurvives(t *testing.T) {
	f := newFixture(t)
	tenant := f.addTenant(t, "Victim", "victim")
	require.True(t, f.resolver.Login("superadmin", "superadmin"))

	require.NoError(t, f.svc.DeleteTenant(tenant.ID))

	require.Eventually(t, func() bool {
		return !f.remote.Has(remote.CollectionTenants, tenant.ID)
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotNil(t, f.resolver.Current())
}
