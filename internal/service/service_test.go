package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/AsanTolepov/softwash/internal/auth"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/remote/remotetest"
	"github.com/AsanTolepov/softwash/internal/session"
	"github.com/AsanTolepov/softwash/internal/store"
)

// stubTranslator answers from a fixed table; unknown text or a forced
// error simulates the proxy being down.
type stubTranslator struct {
	mu           sync.Mutex
	translations map[string]map[string]string // text → lang → value
	err          error
	calls        int
}

func (s *stubTranslator) Translate(_ context.Context, text, _, targetLang string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if byLang, ok := s.translations[text]; ok {
		return byLang[targetLang], nil
	}
	return "", nil
}

func (s *stubTranslator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// sinkRecorder collects errors swallowed by the pipeline.
type sinkRecorder struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (r *sinkRecorder) sink(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

func (r *sinkRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

type fixture struct {
	svc        *Service
	cache      *store.Cache
	remote     *remotetest.Fake
	resolver   *auth.Resolver
	translator *stubTranslator
	sink       *sinkRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fake := remotetest.New()
	rec := &sinkRecorder{}
	cache := store.New(fake, rec.sink)
	resolver := auth.NewResolver(cache, session.NewFileStore(filepath.Join(t.TempDir(), "session.json")))
	translator := &stubTranslator{translations: map[string]map[string]string{
		"Yuvuvchi":   {"ru": "Мойщик", "en": "Washer"},
		"Kir kukuni": {"ru": "Стиральный порошок", "en": "Laundry detergent"},
	}}
	svc := New(cache, fake, resolver, translator, rec.sink)
	return &fixture{
		svc: svc, cache: cache, remote: fake,
		resolver: resolver, translator: translator, sink: rec,
	}
}

func (f *fixture) addTenant(t *testing.T, name, login string) model.Tenant {
	t.Helper()
	tenant, err := f.svc.CreateTenant(model.Tenant{
		Name: name, Login: login, Password: login + "123", IsEnabled: true,
	})
	if err != nil {
		t.Fatalf("addTenant: %v", err)
	}
	return tenant
}

var errProxyDown = errors.New("translate proxy unreachable")
