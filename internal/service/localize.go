package service

import (
	"context"
	"sync"

	"github.com/AsanTolepov/softwash/internal/i18n"
	"github.com/AsanTolepov/softwash/internal/model"
)

// localize builds a localized text value from a base-language string,
// filling the two translation slots concurrently via the translation
// proxy. Per-call failures are swallowed: whatever slot fails simply
// stays empty and the base value stands alone.
func (s *Service) localize(ctx context.Context, text string) model.LocalizedText {
	lt := model.LocalizedText{Base: text}
	if s.translator == nil || text == "" {
		return lt
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, target := range i18n.Targets() {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			translated, err := s.translator.Translate(ctx, text, i18n.LangUz, target)
			if err != nil || translated == "" {
				if err != nil {
					logTranslateMiss(text, err)
				}
				return
			}
			mu.Lock()
			i18n.SetVariant(&lt, target, translated)
			mu.Unlock()
		}(target)
	}
	wg.Wait()
	return lt
}
