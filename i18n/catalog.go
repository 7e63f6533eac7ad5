// Package i18n renders message keys to display text. Catalogs are YAML
// files embedded per locale; lookup falls back to the base locale, then to
// the key itself so a missing entry stays visible instead of blank.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocalesFS embed.FS

// Bundle holds every loaded locale catalog.
type Bundle struct {
	messages map[string]map[string]string // locale -> key -> template
	tags     []language.Tag
	matcher  language.Matcher
}

// LoadEmbedded loads the catalogs embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedLocalesFS)
}

// LoadFromFS loads "locales/<locale>.yaml" files from the given filesystem.
func LoadFromFS(localeFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(localeFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var entries map[string]string
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), ".yaml")
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: bad locale name: %w", p, err)
		}
		bundle.messages[locale] = entries
		bundle.tags = append(bundle.tags, tag)
	}
	if _, ok := bundle.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is missing", BaseLocale)
	}
	bundle.matcher = language.NewMatcher(bundle.tags)
	return bundle, nil
}

// Locales returns the loaded locale names, sorted.
func (b *Bundle) Locales() []string {
	locales := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// For returns a Localizer for the closest supported locale. Unknown or
// unparseable locales fall back to the base locale.
func (b *Bundle) For(locale string) *Localizer {
	resolved := BaseLocale
	if tag, err := language.Parse(locale); err == nil {
		_, i, conf := b.matcher.Match(tag)
		if conf > language.No {
			resolved = b.tags[i].String()
		}
	}
	if _, ok := b.messages[resolved]; !ok {
		resolved = BaseLocale
	}
	return &Localizer{bundle: b, locale: resolved}
}

// Localizer renders message keys for one locale.
type Localizer struct {
	bundle *Bundle
	locale string
}

// Locale returns the resolved locale name.
func (l *Localizer) Locale() string { return l.locale }

// T renders a key, substituting "{name}" placeholders from subs.
func (l *Localizer) T(key string, subs map[string]string) string {
	template, ok := l.bundle.messages[l.locale][key]
	if !ok {
		template, ok = l.bundle.messages[BaseLocale][key]
	}
	if !ok {
		return key
	}
	if len(subs) == 0 {
		return template
	}
	pairs := make([]string, 0, len(subs)*2)
	for name, value := range subs {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
