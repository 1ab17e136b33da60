package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Hint     string // argument hints in usage lines
	Selected string // highlighted completion in the browser
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"contrast",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:  "10",  // bright green
		Warning:  "11",  // bright yellow
		Error:    "9",   // bright red
		Info:     "14",  // bright cyan
		Muted:    "245", // medium gray
		Header:   "bold",
		Hint:     "12", // bright blue
		Selected: "13", // bright magenta
	},
	"default-light": {
		Success:  "28",  // dark green
		Warning:  "130", // dark orange
		Error:    "124", // dark red
		Info:     "27",  // dark blue
		Muted:    "243", // medium-dark gray
		Header:   "bold",
		Hint:     "25", // steel blue
		Selected: "90", // dark magenta
	},

	// Monochrome - grays only, for terminals where color is a distraction.
	"mono-dark": {
		Success:  "255",
		Warning:  "250",
		Error:    "bold",
		Info:     "252",
		Muted:    "242",
		Header:   "bold",
		Hint:     "247",
		Selected: "bold",
	},
	"mono-light": {
		Success:  "232",
		Warning:  "238",
		Error:    "bold",
		Info:     "235",
		Muted:    "246",
		Header:   "bold",
		Hint:     "240",
		Selected: "bold",
	},

	// High contrast - saturated primaries.
	"contrast-dark": {
		Success:  "46",
		Warning:  "226",
		Error:    "196",
		Info:     "51",
		Muted:    "250",
		Header:   "bold",
		Hint:     "231",
		Selected: "201",
	},
	"contrast-light": {
		Success:  "22",
		Warning:  "130",
		Error:    "124",
		Info:     "21",
		Muted:    "240",
		Header:   "bold",
		Hint:     "16",
		Selected: "90",
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success":  "Success",
	"color_warning":  "Warning",
	"color_error":    "Error",
	"color_info":     "Info",
	"color_muted":    "Muted",
	"color_header":   "Header",
	"color_hint":     "Hint",
	"color_selected": "Selected",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (TWIG_COLOR_*)
// 2. Config file value
// 3. Theme value (from color_theme config)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("TWIG_COLOR_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme, ok := cfg["color_theme"]; ok && cfgTheme != "" {
		themeName = cfgTheme
	}

	theme, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme

	for configKey, fieldName := range colorConfigKeys {
		envKey := "TWIG_" + strings.ToUpper(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Hint":
		c.Hint = value
	case "Selected":
		c.Selected = value
	}
}
