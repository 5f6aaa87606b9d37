package service

import (
	"context"
	"sync"

	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote"
)

// CreateTenant validates and adds a tenant. The primary credential pair
// must be unique among enabled tenants.
func (s *Service) CreateTenant(t model.Tenant) (model.Tenant, error) {
	if t.Name == "" {
		return model.Tenant{}, ErrTenantNameRequired
	}
	if t.Login == "" || t.Password == "" {
		return model.Tenant{}, ErrCredentialsRequired
	}
	if t.IsEnabled && s.loginTakenByEnabled(t.Login, "") {
		return model.Tenant{}, ErrLoginTaken
	}
	return s.cache.AddTenant(t), nil
}

// UpdateTenant merges the patch and, when the rename touches the currently
// authenticated admin's tenant, refreshes the session's cached display
// name in place.
func (s *Service) UpdateTenant(id string, p model.TenantPatch) (model.Tenant, error) {
	if p.Login != nil && s.loginTakenByEnabled(*p.Login, id) {
		return model.Tenant{}, ErrLoginTaken
	}
	updated, ok := s.cache.UpdateTenant(id, p)
	if !ok {
		return model.Tenant{}, ErrTenantNotFound
	}
	if p.Name != nil {
		s.auth.RefreshTenantName(id, *p.Name)
	}
	return updated, nil
}

func (s *Service) loginTakenByEnabled(login, excludeID string) bool {
	for _, t := range s.cache.Tenants() {
		if t.ID != excludeID && t.IsEnabled && t.Login == login {
			return true
		}
	}
	return false
}

// DeleteTenant is the cascading delete: the tenant and every dependent
// order, staff member and expense leave the in-memory cache synchronously,
// before any remote call returns. The remote side then runs in the
// background as one coordinated unit. A partial remote failure is logged
// and not retried — the local view is already consistent, at the accepted
// cost of possible orphaned remote documents.
func (s *Service) DeleteTenant(id string) error {
	if !s.cache.PurgeTenant(id) {
		return ErrTenantNotFound
	}

	go func() {
		ctx := context.Background()
		if err := s.cascadeRemote(ctx, id); err != nil {
			s.sink("cascade delete tenant", err)
			return
		}
		// Downgrade the acting user's own session only once the data
		// removal has been issued.
		s.auth.DropTenantSession(id)
	}()
	return nil
}

// cascadeRemote deletes the tenant document, then queries each dependent
// collection for documents carrying the tenant id and deletes every one
// found. All deletions run concurrently and are awaited together.
func (s *Service) cascadeRemote(ctx context.Context, tenantID string) error {
	if err := s.remote.DeleteDocument(ctx, remote.CollectionTenants, tenantID); err != nil {
		return err
	}

	collections := []string{
		remote.CollectionOrders,
		remote.CollectionStaff,
		remote.CollectionExpenses,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, collection := range collections {
		wg.Add(1)
		go func(collection string) {
			defer wg.Done()
			docs, err := s.remote.QueryEquality(ctx, collection, "tenantId", tenantID)
			if err != nil {
				fail(err)
				return
			}
			for _, doc := range docs {
				docID, err := remote.DocumentID(doc)
				if err != nil {
					fail(err)
					continue
				}
				wg.Add(1)
				go func(docID string) {
					defer wg.Done()
					if err := s.remote.DeleteDocument(ctx, collection, docID); err != nil {
						fail(err)
					}
				}(docID)
			}
		}(collection)
	}
	wg.Wait()
	return firstErr
}
