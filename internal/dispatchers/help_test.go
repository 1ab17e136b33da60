package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/twig/internal/ui/style"
)

func TestHelp(t *testing.T) {
	style.Init(false, nil)

	out := Help(newTestRegistry())

	require.Contains(t, out, "twig - type a command")
	require.Contains(t, out, "session settings\n")
	require.Contains(t, out, "   /set        Change a session setting\n")
	require.Contains(t, out, "numbers\n")
	require.Contains(t, out, "console\n")
	require.NotContains(t, out, "text\n", "empty categories are skipped")
	require.Less(t, strings.Index(out, "session settings"), strings.Index(out, "console"))
}

func TestCommandHelp(t *testing.T) {
	style.Init(false, nil)

	out := CommandHelp(newSetCommand())

	require.Equal(t, "/set - Change a session setting\n\n"+
		"USAGE\n"+
		"   /set(/s) locale en_us|fr_fr\n"+
		"   /set(/s) path Text\n"+
		"\nALIASES\n   /s\n", out)
}

func TestCommandHelp_NoAliases(t *testing.T) {
	style.Init(false, nil)

	out := CommandHelp(newAddCommand())

	require.Equal(t, "/add\n\nUSAGE\n   /add Int...\n", out)
}
