// Package service is the mutation pipeline: every create/update/delete the
// application performs goes through here. It validates and shapes the
// change, applies it to the local cache synchronously, and leaves the
// asynchronous remote write to the cache — except for the cascading tenant
// delete, whose remote side is coordinated here.
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/auth"
	"github.com/AsanTolepov/softwash/internal/remote"
	"github.com/AsanTolepov/softwash/internal/store"
)

// Validation refusals surfaced to the caller. Everything else that can go
// wrong on the remote side is swallowed and logged per the optimistic
// write policy.
var (
	ErrTenantNameRequired  = errors.New("tenant name is required")
	ErrCredentialsRequired = errors.New("login and password are required")
	ErrLoginTaken          = errors.New("login already used by an enabled tenant")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrCustomerRequired    = errors.New("customer first name and phone are required")
	ErrItemCountInvalid    = errors.New("item count must be positive")
	ErrAdvanceTooLarge     = errors.New("advance cannot exceed total")
	ErrStaffNameRequired   = errors.New("staff first name is required")
	ErrProductRequired     = errors.New("product name is required")
)

// Translator produces one translation of text between two languages. The
// pipeline calls it best-effort; failures fall back to the base language.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Service wires the mutation pipeline's collaborators.
type Service struct {
	cache      *store.Cache
	remote     remote.Store
	auth       *auth.Resolver
	translator Translator
	sink       store.ErrorSink
}

// New builds the pipeline. translator may be nil (translations skipped);
// a nil sink falls back to the logging sink.
func New(cache *store.Cache, r remote.Store, resolver *auth.Resolver, translator Translator, sink store.ErrorSink) *Service {
	if sink == nil {
		sink = store.LogSink
	}
	return &Service{cache: cache, remote: r, auth: resolver, translator: translator, sink: sink}
}

// Cache exposes the read side for the delivery layer.
func (s *Service) Cache() *store.Cache { return s.cache }

// Auth exposes the resolver for the delivery layer.
func (s *Service) Auth() *auth.Resolver { return s.auth }

func logTranslateMiss(text string, err error) {
	log.Debug().Str("text", text).Err(err).Msg("translation unavailable; storing base language only")
}
