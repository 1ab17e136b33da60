package config

// Key defines a configuration key with its metadata.
type Key struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in /config output
	HideIfEmpty bool   // Only written to a new config file when explicitly set
}

// Keys defines all available configuration keys, in display order.
var Keys = []Key{
	// Console
	{
		Name:        "prompt",
		Default:     "twig> ",
		Description: "Prompt shown by the interactive console",
		Section:     "Console",
	},
	{
		Name:        "history_limit",
		Default:     "500",
		Description: "Number of history lines loaded into the line editor",
		Section:     "Console",
	},
	{
		Name:        "locale",
		Default:     "en_us",
		Description: "Initial value of /set locale: en_us, en_gb, fr_fr, de_de",
		Section:     "Console",
	},
	{
		Name:        "path",
		Default:     "",
		Description: "Initial value of /set path",
		Section:     "Console",
	},
	{
		Name:        "verbose",
		Default:     "false",
		Description: "Print the resolved values of every command (true/false)",
		Section:     "Console",
	},
	// Display
	{
		Name:        "color",
		Default:     "true",
		Description: "Colorize output when writing to a terminal (true/false)",
		Section:     "Display",
	},
	{
		Name:        "color_theme",
		Default:     "default",
		Description: "Color theme: default, mono, contrast",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format in /history: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format in /history: 24h or 12h",
		Section:     "Display",
	},
	{
		Name:        "pager",
		Description: "Pager for help and usage output; 'cat' disables paging",
		Section:     "Display",
		HideIfEmpty: true,
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header style from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_hint",
		Description: "Override argument hint color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_selected",
		Description: "Override selected completion color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

var keyMap map[string]Key

func init() {
	keyMap = make(map[string]Key, len(Keys))
	for _, key := range Keys {
		keyMap[key.Name] = key
	}
}

// LookupKey returns the Key for a given name.
func LookupKey(name string) (Key, bool) {
	key, ok := keyMap[name]
	return key, ok
}

// IsValidKey checks if a key name is valid.
func IsValidKey(name string) bool {
	_, ok := keyMap[name]
	return ok
}

// KeyNames returns every key name in display order.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, key := range Keys {
		names[i] = key.Name
	}
	return names
}

// Sections returns the ordered list of section names.
func Sections() []string {
	return []string{"Console", "Display", "Logging", "Color Overrides"}
}
