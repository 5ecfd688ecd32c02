// Package i18n resolves the storefront locale and serves translated
// UI strings for the supported languages.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/storefront/backend/internal/infrastructure/config"
)

// Bundle holds the supported locales and their message catalogs.
type Bundle struct {
	defaultLocale string
	tags          []language.Tag
	locales       []string
	matcher       language.Matcher
	messages      map[string]map[string]string
}

// NewBundle builds a bundle for the configured locales. Unknown
// configured locales are skipped; the default locale is always
// present.
func NewBundle(cfg config.I18nConfig) *Bundle {
	b := &Bundle{
		defaultLocale: cfg.DefaultLocale,
		messages:      catalogs,
	}

	seen := map[string]bool{}
	add := func(locale string) {
		if seen[locale] {
			return
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return
		}
		seen[locale] = true
		b.tags = append(b.tags, tag)
		b.locales = append(b.locales, locale)
	}

	add(cfg.DefaultLocale)
	for _, locale := range cfg.SupportedLocales {
		add(locale)
	}

	b.matcher = language.NewMatcher(b.tags)
	return b
}

// Match resolves an Accept-Language header (or explicit locale value)
// to a supported locale, falling back to the default.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return b.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.defaultLocale
	}
	_, index, confidence := b.matcher.Match(tags...)
	if confidence == language.No {
		return b.defaultLocale
	}
	return b.locales[index]
}

// Supported reports whether the locale is served.
func (b *Bundle) Supported(locale string) bool {
	for _, l := range b.locales {
		if l == locale {
			return true
		}
	}
	return false
}

// T returns the message for key in the given locale, falling back to
// the default locale, then to the key itself.
func (b *Bundle) T(locale, key string) string {
	if msgs, ok := b.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msgs, ok := b.messages[b.defaultLocale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return key
}

// Messages returns the full catalog for a locale, with default-locale
// fallbacks merged in.
func (b *Bundle) Messages(locale string) map[string]string {
	out := map[string]string{}
	for k, v := range b.messages[b.defaultLocale] {
		out[k] = v
	}
	if locale != b.defaultLocale {
		for k, v := range b.messages[locale] {
			out[k] = v
		}
	}
	return out
}

// DefaultLocale returns the fallback locale.
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Locales lists the served locales.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.locales))
	copy(out, b.locales)
	return out
}
