package console

import (
	"strconv"
	"strings"
)

// Locale is a /set locale value.
type Locale int

const (
	LocaleEnUS Locale = iota
	LocaleEnGB
	LocaleFrFR
	LocaleDeDE
)

var localeNames = []string{"en_us", "en_gb", "fr_fr", "de_de"}

// Locales lists every locale in display order.
func Locales() []Locale {
	return []Locale{LocaleEnUS, LocaleEnGB, LocaleFrFR, LocaleDeDE}
}

func (l Locale) String() string {
	if int(l) >= 0 && int(l) < len(localeNames) {
		return localeNames[l]
	}
	return "locale(" + strconv.Itoa(int(l)) + ")"
}

// ParseLocale reads a locale name, ignoring case.
func ParseLocale(s string) (Locale, bool) {
	for i, name := range localeNames {
		if strings.EqualFold(s, name) {
			return Locale(i), true
		}
	}
	return LocaleEnUS, false
}

// Session holds the settings changed with /set. They last until the
// console exits; /config makes them persistent.
type Session struct {
	ID      string
	Locale  Locale
	Path    string
	Verbose bool
}

// NewSession builds a session from config values. Unknown or missing
// values keep their defaults.
func NewSession(id string, cfg map[string]string) *Session {
	s := &Session{ID: id}
	if l, ok := ParseLocale(cfg["locale"]); ok {
		s.Locale = l
	}
	s.Path = cfg["path"]
	s.Verbose, _ = strconv.ParseBool(cfg["verbose"])
	return s
}
