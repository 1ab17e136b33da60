package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var semantic = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
	{"Hint", Hint},
	{"Selected", Selected},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TWIG_NO_COLOR", "")

	Init(false, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, "test message", tt.fn("test message"))
		})
	}
	require.Equal(t, "a\nb", Frame("a\nb"))
}

func TestEnabledReturnsStyledText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TWIG_NO_COLOR", "")
	t.Setenv("TWIG_COLOR_THEME", "default-dark")
	defer Init(false, nil)

	Init(true, nil)

	for _, tt := range semantic {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.Contains(t, output, "\x1b[", "enabled styling should emit ANSI codes")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "TWIG_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("TWIG_NO_COLOR", "")
			t.Setenv(env, "1")

			Init(true, nil)

			require.False(t, Enabled())
			require.Equal(t, "test", Success("test"))
		})
	}
}

func TestLoadColorConfig(t *testing.T) {
	t.Setenv("TWIG_COLOR_THEME", "")
	t.Setenv("TWIG_COLOR_ERROR", "")

	tests := []struct {
		name string
		env  map[string]string
		cfg  map[string]string
		want func(ColorConfig) bool
	}{
		{
			name: "theme from config",
			cfg:  map[string]string{"color_theme": "mono-light"},
			want: func(c ColorConfig) bool { return c == Themes["mono-light"] },
		},
		{
			name: "unknown theme falls back",
			cfg:  map[string]string{"color_theme": "nope-dark"},
			want: func(c ColorConfig) bool { return c == Themes["default-dark"] },
		},
		{
			name: "config overrides a single color",
			cfg:  map[string]string{"color_theme": "default-dark", "color_hint": "99"},
			want: func(c ColorConfig) bool { return c.Hint == "99" && c.Info == "14" },
		},
		{
			name: "env beats config",
			env:  map[string]string{"TWIG_COLOR_THEME": "contrast-dark", "TWIG_COLOR_ERROR": "1"},
			cfg:  map[string]string{"color_theme": "mono-dark", "color_error": "2"},
			want: func(c ColorConfig) bool { return c.Error == "1" && c.Success == "46" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := LoadColorConfig(tt.cfg)
			require.True(t, tt.want(got), "got %+v", got)
		})
	}
}

func TestResolveThemeName_KeepsExplicitVariant(t *testing.T) {
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
	require.True(t, strings.HasPrefix(ResolveThemeName("ocean"), "ocean-"))
}

func TestStylerMatchesFunctions(t *testing.T) {
	Init(false, nil)
	s := NewStyler()

	require.False(t, s.Enabled())
	require.Equal(t, Hint("x"), s.Hint("x"))
	require.Equal(t, "x", NopStyler{}.Error("x"))
}
