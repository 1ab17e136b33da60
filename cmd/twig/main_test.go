package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/twig/internal/console"
	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/store"
	"github.com/footprint-tools/twig/internal/testutil"
	"github.com/footprint-tools/twig/internal/ui/browser"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantWords []string
	}{
		{
			name:      "nothing",
			args:      []string{},
			wantFlags: []string{},
			wantWords: []string{},
		},
		{
			name:      "mode and line",
			args:      []string{"complete", "/set lo"},
			wantFlags: []string{},
			wantWords: []string{"complete", "/set lo"},
		},
		{
			name:      "boolean flags",
			args:      []string{"--no-color", "-h", "usage"},
			wantFlags: []string{"--no-color", "-h"},
			wantWords: []string{"usage"},
		},
		{
			name:      "eval with separate value",
			args:      []string{"-e", "/add 1 2"},
			wantFlags: []string{"--eval=/add 1 2"},
			wantWords: []string{},
		},
		{
			name:      "eval value starting with a dash",
			args:      []string{"--eval", "-1"},
			wantFlags: []string{"--eval=-1"},
			wantWords: []string{},
		},
		{
			name:      "eval with equals",
			args:      []string{"--eval=/q"},
			wantFlags: []string{"--eval=/q"},
			wantWords: []string{},
		},
		{
			name:      "dangling eval is kept as a flag",
			args:      []string{"-e"},
			wantFlags: []string{"-e"},
			wantWords: []string{},
		},
		{
			name:      "double dash ends flags",
			args:      []string{"complete", "--", "/echo -x"},
			wantFlags: []string{},
			wantWords: []string{"complete", "/echo -x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, words := splitArgs(tt.args)
			require.Equal(t, tt.wantFlags, flags)
			require.Equal(t, tt.wantWords, words)
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	_, ok := unknownFlag([]string{"--no-color", "--eval=/q", "-h", "--pager=less", "--no-pager", "-e"})
	require.False(t, ok)

	f, ok := unknownFlag([]string{"--no-color", "--paginate"})
	require.True(t, ok)
	require.Equal(t, "--paginate", f)

	f, ok = unknownFlag([]string{"-x=1"})
	require.True(t, ok)
	require.Equal(t, "-x=1", f)
}

type testEnv struct {
	env
	out    *bytes.Buffer
	errOut *bytes.Buffer
	store  *store.Store
	home   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := testutil.IsolateHome(t)
	st := testutil.NewTestStore(t)

	te := &testEnv{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, store: st, home: home}
	te.env = env{
		stdout:     te.out,
		stderr:     te.errOut,
		isTerminal: func() bool { return false },
		openStore:  func() (*store.Store, error) { return te.store, nil },
		browse: func(*dispatchers.Registry, string) (string, error) {
			return "", browser.ErrNotTerminal
		},
		serve: func(*console.Console, []string, string) error {
			return errors.New("no terminal in tests")
		},
	}
	return te
}

func TestRun_Eval(t *testing.T) {
	te := newTestEnv(t)

	code := run([]string{"-e", "/add 1 2 3"}, te.env)

	require.Equal(t, 0, code, te.errOut.String())
	require.Equal(t, "6\n", te.out.String())
}

func TestRun_EvalExitCodes(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"/volume 50", 0},
		{"/volume 500", 2},
		{"/add", 2},
		{"/nope", 1},
		{"/seq 1..100000", 1},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			te := newTestEnv(t)
			require.Equal(t, tt.want, run([]string{"-e", tt.line}, te.env))
		})
	}
}

func TestRun_RecordsHistory(t *testing.T) {
	te := newTestEnv(t)
	path := filepath.Join(te.home, "history.db")
	te.openStore = func() (*store.Store, error) { return store.New(path) }

	require.Equal(t, 0, run([]string{"-e", "/echo one"}, te.env))
	require.Equal(t, 2, run([]string{"-e", "/volume 101"}, te.env))

	st, err := store.New(path)
	require.NoError(t, err)
	defer st.Close()

	entries, err := st.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "/volume 101", entries[0].Line)
	require.Equal(t, store.OutcomeRejected, entries[0].Outcome)
	require.Equal(t, "/echo one", entries[1].Line)
	require.Equal(t, store.OutcomeOK, entries[1].Outcome)
	require.NotEqual(t, entries[0].SessionID, entries[1].SessionID)
}

func TestRun_Complete(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, run([]string{"complete", "/set", "lo"}, te.env))
	require.Equal(t, "/set locale \n", te.out.String())
}

func TestRun_Usage(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, run([]string{"usage"}, te.env))
	require.Contains(t, te.out.String(), "/volume Int(radix=10, 0..100)\n")
	require.Contains(t, te.out.String(), "/set(/s) locale en_us|en_gb|fr_fr|de_de\n")
}

func TestRun_Help(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, run([]string{"--help"}, te.env))
	require.Contains(t, te.out.String(), "usage: twig")

	te.out.Reset()
	require.Equal(t, 0, run([]string{"help"}, te.env))
	require.Contains(t, te.out.String(), "/history")
}

func TestRun_Errors(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 2, run([]string{"--paginate"}, te.env))
	require.Contains(t, te.errOut.String(), "twig: invalid flag '--paginate'")

	te = newTestEnv(t)
	require.Equal(t, 2, run([]string{"-e"}, te.env))
	require.Contains(t, te.errOut.String(), "twig: missing required argument 'LINE'")

	te = newTestEnv(t)
	require.Equal(t, 2, run([]string{"usage", "extra"}, te.env))
	require.Contains(t, te.errOut.String(), "twig: unexpected `extra`, expected `end of input`")

	te = newTestEnv(t)
	require.Equal(t, 2, run([]string{"completion", "tcsh"}, te.env))
	require.Contains(t, te.errOut.String(), "twig: unexpected `tcsh`, expected `end of input | bash|zsh|fish`")
	require.Contains(t, te.errOut.String(), "    fish")

	te = newTestEnv(t)
	require.Equal(t, 1, run([]string{"compelte"}, te.env))
	require.Contains(t, te.errOut.String(), "complete")

	te = newTestEnv(t)
	require.Equal(t, 1, run([]string{"browse"}, te.env))
	require.Contains(t, te.errOut.String(), "interactive terminal")

	te = newTestEnv(t)
	require.Equal(t, 1, run(nil, te.env))
	require.Contains(t, te.errOut.String(), "no terminal in tests")
}

func TestRun_BrowseRunsChosenLine(t *testing.T) {
	te := newTestEnv(t)
	te.browse = func(r *dispatchers.Registry, initial string) (string, error) {
		require.Equal(t, "/add", initial)
		return "/add 20 22", nil
	}

	require.Equal(t, 0, run([]string{"browse", "/add"}, te.env))
	require.Equal(t, "/add 20 22\n42\n", te.out.String())
}

func TestRun_ServeGetsHistoryAndPrompt(t *testing.T) {
	te := newTestEnv(t)
	_, err := te.store.Append("old", "/echo earlier", store.OutcomeOK)
	require.NoError(t, err)

	var gotHistory []string
	var gotPrompt string
	te.serve = func(c *console.Console, history []string, prompt string) error {
		gotHistory, gotPrompt = history, prompt
		return c.Run("/quit")
	}

	require.Equal(t, 0, run(nil, te.env))
	require.Equal(t, []string{"/echo earlier"}, gotHistory)
	require.Equal(t, "twig> ", gotPrompt)
}

func TestRun_CreatesConfigFile(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, run([]string{"-e", "/echo"}, te.env))

	_, err := os.Stat(filepath.Join(te.home, ".twigrc"))
	require.NoError(t, err)
}

func TestRun_PagerFlagsWriteDirectly(t *testing.T) {
	for _, args := range [][]string{
		{"--no-pager", "--help"},
		{"--pager=cat", "--help"},
		{"--pager=less -R", "help"},
	} {
		te := newTestEnv(t)
		require.Equal(t, 0, run(args, te.env), args)
		require.NotEmpty(t, te.out.String(), args)
		require.Empty(t, te.errOut.String(), args)
	}
}

func TestRun_CompletionScripts(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, run([]string{"completion", "bash"}, te.env))
	require.Contains(t, te.out.String(), `compgen -W "complete usage help browse completion"`)
	require.Contains(t, te.out.String(), `compgen -W "bash zsh fish"`)
	require.Contains(t, te.out.String(), "--no-pager")

	te = newTestEnv(t)
	require.Equal(t, 0, run([]string{"completion", "FISH"}, te.env))
	require.Contains(t, te.out.String(), "complete -c ")

	te = newTestEnv(t)
	require.Equal(t, 0, run([]string{"completion"}, te.env))
	require.Contains(t, te.out.String(), "# zsh: add to ~/.zshrc\n")
	require.Contains(t, te.out.String(), "completion fish | source\n")
}

func TestRun_CompleteWithoutLine(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, run([]string{"complete"}, te.env))
	require.Contains(t, te.out.String(), "/set \n")
	require.Contains(t, te.out.String(), "/quit \n")
}

func TestRun_BrowseFailure(t *testing.T) {
	te := newTestEnv(t)
	te.browse = func(*dispatchers.Registry, string) (string, error) {
		return "", errors.New("tty lost")
	}

	require.Equal(t, 1, run([]string{"browse"}, te.env))
	require.Contains(t, te.errOut.String(), "twig: tty lost")
}
