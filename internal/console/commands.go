package console

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/twig/internal/config"
	"github.com/footprint-tools/twig/internal/dispatchers"
	"github.com/footprint-tools/twig/internal/paths"
	"github.com/footprint-tools/twig/internal/token"
	"github.com/footprint-tools/twig/internal/usage"
)

const (
	defaultHistoryCount = 20
	grepScanLimit       = 1000
	maxSeqLength        = 1000
)

var (
	errNoHistory = errors.New("history is not available")
	errNoConfig  = errors.New("config is not available")

	errSumOverflow = errors.New("sum does not fit in an integer")

	seqPattern = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)$`)
	hexPrefix  = regexp.MustCompile(`^0[xX]([0-9a-fA-F]+)$`)
)

func (c *Console) commands() []*dispatchers.Command {
	return []*dispatchers.Command{
		c.setCommand(),
		addCommand(),
		avgCommand(),
		hexCommand(),
		seqCommand(),
		volumeCommand(),
		echoCommand(),
		c.grepCommand(),
		c.configCommand(),
		c.historyCommand(),
		c.helpCommand(),
		c.quitCommand(),
	}
}

// /set(/s)
// /set(/s) locale en_us|en_gb|fr_fr|de_de
// /set(/s) path Text
// /set(/s) verbose Bool
func (c *Console) setCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/set",
		Aliases:  []string{"/s"},
		Summary:  "Show or change a session setting",
		Category: dispatchers.CategorySettings,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			s := c.session
			return fmt.Sprintf("locale=%s\npath=%s\nverbose=%t", s.Locale, s.Path, s.Verbose), nil
		})
		b.Branch(token.Literal("locale", true), func(b *dispatchers.Builder) {
			b.End(token.Enum(Locales()...), func(p dispatchers.Params) (any, error) {
				c.session.Locale = dispatchers.Param[Locale](p, -1)
				return "locale=" + c.session.Locale.String(), nil
			})
		})
		b.Branch(token.Literal("path", true), func(b *dispatchers.Builder) {
			b.End(token.Text(), func(p dispatchers.Params) (any, error) {
				c.session.Path = dispatchers.Param[string](p, -1)
				return "path=" + c.session.Path, nil
			})
		})
		b.Branch(token.Literal("verbose", true), func(b *dispatchers.Builder) {
			b.End(token.Bool(), func(p dispatchers.Params) (any, error) {
				c.session.Verbose = dispatchers.Param[bool](p, -1)
				return "verbose=" + strconv.FormatBool(c.session.Verbose), nil
			})
		})
	})
}

// /add Int...
func addCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/add",
		Summary:  "Add integers",
		Category: dispatchers.CategoryCompute,
	}, func(b *dispatchers.Builder) {
		b.End(token.Variadic(token.Int(10)), func(p dispatchers.Params) (any, error) {
			sum := 0
			for _, v := range dispatchers.Rest[int](p, 1) {
				if (v > 0 && sum > math.MaxInt-v) || (v < 0 && sum < math.MinInt-v) {
					return nil, errSumOverflow
				}
				sum += v
			}
			return sum, nil
		})
	})
}

// /avg Float...
func avgCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/avg",
		Summary:  "Average numbers",
		Category: dispatchers.CategoryCompute,
	}, func(b *dispatchers.Builder) {
		b.End(token.Variadic(token.Float()), func(p dispatchers.Params) (any, error) {
			values := dispatchers.Rest[float64](p, 1)
			var sum float64
			for _, v := range values {
				sum += v
			}
			return strconv.FormatFloat(sum/float64(len(values)), 'g', -1, 64), nil
		})
	})
}

// hexToken accepts hex digits with or without a 0x prefix.
func hexToken() token.Token[int] {
	prefixed := token.Transform(token.Regex(hexPrefix), func(m token.Match) (int, bool) {
		v, err := strconv.ParseInt(m.Groups[1], 16, strconv.IntSize)
		return int(v), err == nil
	})
	return token.WithHint(token.Union(token.Int(16), prefixed), "Int(Hex)")
}

// /hex Int(Hex)
func hexCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/hex",
		Summary:  "Convert a hexadecimal number to decimal",
		Category: dispatchers.CategoryCompute,
	}, func(b *dispatchers.Builder) {
		b.End(hexToken(), func(p dispatchers.Params) (any, error) {
			return dispatchers.Param[int](p, 1), nil
		})
	})
}

type span struct {
	from, to int
}

// /seq From..To
func seqCommand() *dispatchers.Command {
	tok := token.Transform(token.Regex(seqPattern), func(m token.Match) (span, bool) {
		from, err1 := strconv.Atoi(m.Groups[1])
		to, err2 := strconv.Atoi(m.Groups[2])
		return span{from, to}, err1 == nil && err2 == nil
	})

	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/seq",
		Summary:  "Print a range of integers",
		Category: dispatchers.CategoryCompute,
	}, func(b *dispatchers.Builder) {
		b.End(token.WithHint(tok, "From..To"), func(p dispatchers.Params) (any, error) {
			s := dispatchers.Param[span](p, 1)
			step := 1
			// Distance in uint64 so opposite extremes cannot wrap.
			dist := uint64(s.to) - uint64(s.from)
			if s.to < s.from {
				step = -1
				dist = uint64(s.from) - uint64(s.to)
			}
			if dist >= maxSeqLength {
				n := new(big.Int).Add(new(big.Int).SetUint64(dist), big.NewInt(1))
				return nil, fmt.Errorf("sequence of %s numbers is longer than %d", n, maxSeqLength)
			}
			var parts []string
			for i := s.from; ; i += step {
				parts = append(parts, strconv.Itoa(i))
				if i == s.to {
					break
				}
			}
			return strings.Join(parts, " "), nil
		})
	})
}

// /volume Int(radix=10, 0..100)
func volumeCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/volume",
		Summary:  "Set the volume in percent",
		Category: dispatchers.CategoryCompute,
	}, func(b *dispatchers.Builder) {
		b.End(token.IntRange(10, 0, 100), func(p dispatchers.Params) (any, error) {
			return fmt.Sprintf("volume=%d%%", dispatchers.Param[int](p, 1)), nil
		})
	})
}

// /echo
// /echo Text...
func echoCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/echo",
		Summary:  "Print the arguments",
		Category: dispatchers.CategoryText,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			return "", nil
		})
		b.End(token.Variadic(token.Text()), func(p dispatchers.Params) (any, error) {
			return strings.Join(dispatchers.Rest[string](p, 1), " "), nil
		})
	})
}

// /grep Pattern
func (c *Console) grepCommand() *dispatchers.Command {
	pattern := token.Transform(token.WithHint(token.Text(), "Pattern"), func(s string) (*regexp.Regexp, bool) {
		re, err := regexp.Compile(s)
		return re, err == nil && s != ""
	})

	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/grep",
		Summary:  "Search the history with a regular expression",
		Category: dispatchers.CategoryText,
	}, func(b *dispatchers.Builder) {
		b.End(pattern, func(p dispatchers.Params) (any, error) {
			if c.deps.History == nil {
				return nil, errNoHistory
			}
			re := dispatchers.Param[*regexp.Regexp](p, 1)

			entries, err := c.deps.History.Recent(grepScanLimit)
			if err != nil {
				return nil, fmt.Errorf("grep: %w", err)
			}

			var matches []string
			for _, e := range slices.Backward(entries) {
				if re.MatchString(e.Line) {
					matches = append(matches, e.Line)
				}
			}
			return strings.Join(matches, "\n"), nil
		})
	})
}

// configKey accepts the known keys. When nothing starts with the partial
// word it suggests the closest keys instead.
func configKey() token.Token[string] {
	tok := token.WithHint(token.OneOfFunc(true, config.KeyNames), "Key")
	return token.WithSuggestFunc(tok, func(current string) []string {
		if out := tok.Suggest(current); len(out) > 0 {
			return out
		}
		return dispatchers.FindSimilarCommands(current, config.KeyNames(), 3)
	})
}

// /config
// /config get Key
// /config set Key Value...
// /config unset Key
// /config path
func (c *Console) configCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/config",
		Summary:  "Read and write the configuration file",
		Category: dispatchers.CategoryConfig,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			if c.deps.Config == nil {
				return nil, errNoConfig
			}
			values, err := c.deps.Config.GetAll()
			if err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
			lines := make([]string, 0, len(values))
			for _, k := range config.KeyNames() {
				if v, ok := values[k]; ok {
					lines = append(lines, k+"="+v)
				}
			}
			return strings.Join(lines, "\n"), nil
		})
		b.Branch(token.Literal("get", true), func(b *dispatchers.Builder) {
			b.End(configKey(), func(p dispatchers.Params) (any, error) {
				key := dispatchers.Param[string](p, 2)
				if c.deps.Config == nil {
					return nil, errNoConfig
				}
				v, _ := c.deps.Config.Get(key)
				return v, nil
			})
		})
		b.Branch(token.Literal("set", true), func(b *dispatchers.Builder) {
			b.Branch(configKey(), func(b *dispatchers.Builder) {
				b.End(token.Variadic(token.WithHint(token.Text(), "Value")), func(p dispatchers.Params) (any, error) {
					key := dispatchers.Param[string](p, 2)
					if c.deps.Config == nil {
						return nil, errNoConfig
					}
					value := strings.Join(dispatchers.Rest[string](p, 3), " ")
					if err := c.deps.Config.Set(key, value); err != nil {
						return nil, fmt.Errorf("config set %s: %w", key, err)
					}
					c.deps.Logger.Info("console: config %s=%s", key, value)
					return key + "=" + value, nil
				})
			})
		})
		b.Branch(token.Literal("unset", true), func(b *dispatchers.Builder) {
			b.End(configKey(), func(p dispatchers.Params) (any, error) {
				key := dispatchers.Param[string](p, 2)
				if c.deps.Config == nil {
					return nil, errNoConfig
				}
				removed, err := c.deps.Config.Unset(key)
				if err != nil {
					return nil, fmt.Errorf("config unset %s: %w", key, err)
				}
				if !removed {
					return key + " was not set", nil
				}
				return key + " unset", nil
			})
		})
		b.End(token.Literal("path", true), func(p dispatchers.Params) (any, error) {
			path, err := paths.ConfigFilePath()
			if err != nil {
				return nil, usage.FailedConfigPath(err)
			}
			return path, nil
		})
	})
}

// /history
// /history Int(radix=10, 1..1000)
func (c *Console) historyCommand() *dispatchers.Command {
	show := func(limit int) (any, error) {
		if c.deps.History == nil {
			return nil, errNoHistory
		}
		entries, err := c.deps.History.Recent(limit)
		if err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		lines := make([]string, 0, len(entries))
		for _, e := range slices.Backward(entries) {
			lines = append(lines, fmt.Sprintf("%5d  %s  %s", e.ID, c.deps.Dates.DateTimeShort(e.CreatedAt.Local()), e.Line))
		}
		return strings.Join(lines, "\n"), nil
	}

	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/history",
		Summary:  "Show the latest lines",
		Category: dispatchers.CategorySession,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			return show(defaultHistoryCount)
		})
		b.End(token.IntRange(10, 1, 1000), func(p dispatchers.Params) (any, error) {
			return show(dispatchers.Param[int](p, 1))
		})
	})
}

// /help
// /help Command
func (c *Console) helpCommand() *dispatchers.Command {
	names := token.OneOfFunc(true, func() []string { return c.registry.Names() })

	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/help",
		Aliases:  []string{"/?"},
		Summary:  "List the commands or show how to use one",
		Category: dispatchers.CategorySession,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			return strings.TrimRight(dispatchers.Help(c.registry), "\n"), nil
		})
		b.End(token.WithHint(names, "Command"), func(p dispatchers.Params) (any, error) {
			cmd := c.registry.Lookup(dispatchers.Param[string](p, 1))
			return strings.TrimRight(dispatchers.CommandHelp(cmd), "\n"), nil
		})
	})
}

// /quit(/exit|/q)
func (c *Console) quitCommand() *dispatchers.Command {
	return dispatchers.NewCommand(dispatchers.CommandSpec{
		Name:     "/quit",
		Aliases:  []string{"/exit", "/q"},
		Summary:  "Leave the console",
		Category: dispatchers.CategorySession,
	}, func(b *dispatchers.Builder) {
		b.Leaf(func(p dispatchers.Params) (any, error) {
			c.done = true
			return nil, nil
		})
	})
}
