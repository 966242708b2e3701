// Package i18n holds the translated UI strings and the current display
// language. A Store is created at startup and passed to whatever renders
// text; there is no package-level language state.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Language is a catalog code such as "en".
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Direction is the writing direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Catalog is one language's strings.
type Catalog struct {
	Name         string            `yaml:"name"`
	Direction    Direction         `yaml:"direction"`
	Translations map[string]string `yaml:"translations"`
}

// LoadCatalogs parses every embedded locale file, keyed by file name.
func LoadCatalogs() (map[Language]Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}

	catalogs := make(map[Language]Catalog, len(entries))
	for _, e := range entries {
		name := e.Name()
		if path.Ext(name) != ".yaml" {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		var c Catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		catalogs[Language(strings.TrimSuffix(name, ".yaml"))] = c
	}

	if _, ok := catalogs[English]; !ok {
		return nil, fmt.Errorf("i18n: missing %s catalog", English)
	}
	return catalogs, nil
}

// Listener is notified after the language changes.
type Listener func(Language)

type subscription struct {
	id int
	fn Listener
}

// Store holds the catalogs and the current language.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	catalogs  map[Language]Catalog
	current   Language
	listeners []subscription
	nextSub   int
}

// NewStore loads the embedded catalogs and selects initial.
// An unknown initial language falls back to English.
func NewStore(initial Language) (*Store, error) {
	catalogs, err := LoadCatalogs()
	if err != nil {
		return nil, err
	}
	if _, ok := catalogs[initial]; !ok {
		initial = English
	}
	return &Store{
		catalogs: catalogs,
		current:  initial,
	}, nil
}

// Language returns the current language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Languages returns the available languages sorted by code.
func (s *Store) Languages() []Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Language, 0, len(s.catalogs))
	for lang := range s.catalogs {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Supports reports whether a catalog exists for lang.
func (s *Store) Supports(lang Language) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.catalogs[lang]
	return ok
}

// SetLanguage switches the current language and notifies listeners.
// Setting the current language again is a no-op.
func (s *Store) SetLanguage(lang Language) error {
	s.mu.Lock()
	if _, ok := s.catalogs[lang]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("i18n: unsupported language %q", lang)
	}
	if lang == s.current {
		s.mu.Unlock()
		return nil
	}
	s.current = lang
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(lang)
	}
	return nil
}

// Next switches to the language after the current one, wrapping around.
func (s *Store) Next() Language {
	langs := s.Languages()
	cur := s.Language()
	next := langs[0]
	for i, l := range langs {
		if l == cur {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	s.SetLanguage(next) //nolint:errcheck // next comes from the catalog list
	return next
}

// T translates key into the current language.
// Missing keys fall back to English, then to the key itself.
func (s *Store) T(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if text, ok := s.catalogs[s.current].Translations[key]; ok {
		return text
	}
	if text, ok := s.catalogs[English].Translations[key]; ok {
		return text
	}
	return key
}

// Format translates key and replaces every {name} with its value.
func (s *Store) Format(key string, placeholders map[string]string) string {
	text := s.T(key)
	if len(placeholders) == 0 {
		return text
	}
	pairs := make([]string, 0, len(placeholders)*2)
	for k, v := range placeholders {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Direction returns the writing direction of the current language.
func (s *Store) Direction() Direction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.catalogs[s.current].Direction; d != "" {
		return d
	}
	return LTR
}

// Name returns the native name of lang, or its code if unknown.
func (s *Store) Name(lang Language) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.catalogs[lang]; ok && c.Name != "" {
		return c.Name
	}
	return string(lang)
}

// Subscribe registers fn for language changes and returns a function that
// removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close detaches every listener.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = nil
}

// Detect picks the starting language: a saved choice if it is known,
// otherwise Arabic when LC_ALL or LANG starts with "ar", otherwise English.
func Detect(saved string, getenv func(string) string) Language {
	switch lang := Language(strings.ToLower(strings.TrimSpace(saved))); lang {
	case English, Arabic:
		return lang
	}

	for _, key := range []string{"LC_ALL", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(v), "ar") {
			return Arabic
		}
		return English
	}
	return English
}

// ParseLanguage validates a user-supplied language code.
func ParseLanguage(code string) (Language, error) {
	switch lang := Language(strings.ToLower(strings.TrimSpace(code))); lang {
	case English, Arabic:
		return lang, nil
	default:
		return "", fmt.Errorf("i18n: unsupported language %q (want en or ar)", code)
	}
}
