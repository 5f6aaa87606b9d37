// Package i18n resolves localized values for display: structured
// three-variant localized text on entities, and the static UI dictionary
// addressed by dot-separated paths.
package i18n

import (
	"strings"

	"github.com/AsanTolepov/softwash/internal/model"
)

// Supported language codes. Uzbek is the base language; Russian and
// English are the two translation slots of every localized text value.
const (
	LangUz = "uz"
	LangRu = "ru"
	LangEn = "en"
)

// Targets returns the two non-base languages, in slot order.
func Targets() []string { return []string{LangRu, LangEn} }

// Resolve returns the variant of t for the preferred language. When that
// variant is absent it falls back in fixed order base → first alternate →
// second alternate, and returns "" when nothing is populated.
func Resolve(t model.LocalizedText, lang string) string {
	switch lang {
	case LangRu:
		if t.Alt1 != "" {
			return t.Alt1
		}
	case LangEn:
		if t.Alt2 != "" {
			return t.Alt2
		}
	}
	if t.Base != "" {
		return t.Base
	}
	if t.Alt1 != "" {
		return t.Alt1
	}
	return t.Alt2
}

// SetVariant stores value into the slot t uses for lang.
func SetVariant(t *model.LocalizedText, lang, value string) {
	switch lang {
	case LangUz:
		t.Base = value
	case LangRu:
		t.Alt1 = value
	case LangEn:
		t.Alt2 = value
	}
}

// TranslatePath walks the static dictionary for lang by dot-separated
// segments. Missing paths fall back to the base language; when even that
// misses, the literal path comes back as a visible missing-translation
// marker instead of an empty string.
func TranslatePath(path, lang string) string {
	if s, ok := lookup(dictionaries[lang], path); ok {
		return s
	}
	if lang != LangUz {
		if s, ok := lookup(dictionaries[LangUz], path); ok {
			return s
		}
	}
	return path
}

func lookup(dict map[string]any, path string) (string, bool) {
	var current any = dict
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}
