package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/grindlemire/go-kbd"
	"github.com/grindlemire/go-kbd/internal/config"
	"github.com/grindlemire/go-kbd/internal/constraint"
	"github.com/grindlemire/go-kbd/internal/debug"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Layout flags, persistent on root.
var (
	configPath   string
	keyboardName string
	width        float64
	height       float64
	logLevel     string
)

// Command flags
var (
	outputFormat string
	columns      int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (.yaml, .yml, .toml or .json)")
	rootCmd.PersistentFlags().StringVar(&keyboardName, "keyboard", "latin", "Built-in keyboard (latin, cyrillic) used when the config defines none")
	rootCmd.PersistentFlags().Float64Var(&width, "width", kbd.DefaultBounds.Width, "Container width in points")
	rootCmd.PersistentFlags().Float64Var(&height, "height", kbd.DefaultBounds.Height, "Container height in points")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")

	framesCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	addPreviewFlags(previewCmd.Flags())
	addPreviewFlags(watchCmd.Flags())

	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(constraintsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(watchCmd)
}

func addPreviewFlags(fs *pflag.FlagSet) {
	fs.IntVar(&columns, "cols", 0, "Preview width in terminal columns (default: terminal width)")
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print the solved frame of every key",
	Example: `  # Default QWERTY keyboard on a 320x216 container
  kbd frames

  # Landscape container, JSON output
  kbd frames --width 568 --height 162 --format json`,
	RunE: runFrames,
}

var constraintsCmd = &cobra.Command{
	Use:   "constraints",
	Short: "Print the generated constraints",
	Long: `Print every constraint of the layout pass, one per line, in the order the
solver receives them. Constraints the solver had to drop are listed last.`,
	RunE: runConstraints,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the keyboard in the terminal",
	RunE:  runPreview,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the preview whenever the config file changes",
	Example: `  kbd watch --config kbd.yaml`,
	RunE: runWatch,
}

func newLogger() (*zap.Logger, error) {
	if logLevel != "" {
		return debug.Console(logLevel)
	}
	return debug.FromEnv()
}

func builtin(name string) (*kbd.Keyboard, error) {
	switch strings.ToLower(name) {
	case "latin", "qwerty":
		return kbd.Latin(), nil
	case "cyrillic", "russian":
		return kbd.Cyrillic(), nil
	default:
		return nil, fmt.Errorf("unknown keyboard %q (want latin or cyrillic)", name)
	}
}

// layoutInputs resolves the keyboard and parameters from the flags.
func layoutInputs(path string) (*kbd.Keyboard, kbd.Parameters, error) {
	kb, err := builtin(keyboardName)
	if err != nil {
		return nil, kbd.Parameters{}, err
	}
	if path == "" {
		return kb, kbd.DefaultParameters(), nil
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, kbd.Parameters{}, err
	}
	return f.KeyboardOr(kb), kbd.ParametersFrom(f), nil
}

func install(logger *zap.Logger) (*kbd.Container, error) {
	kb, params, err := layoutInputs(configPath)
	if err != nil {
		return nil, err
	}
	c, err := kbd.NewContainer(
		kbd.WithBounds(kbd.NewRect(0, 0, width, height)),
		kbd.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if err := c.Install(kb, params); err != nil {
		return nil, err
	}
	return c, nil
}

func withContainer(fn func(*kbd.Container) error) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c, err := install(logger)
	if err != nil {
		return err
	}
	return fn(c)
}

// keyRecord is the serialized form of one key frame.
type keyRecord struct {
	Row    int     `json:"row" yaml:"row"`
	Col    int     `json:"col" yaml:"col"`
	Type   string  `json:"type" yaml:"type"`
	Label  string  `json:"label" yaml:"label"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Color  string  `json:"color" yaml:"color"`
}

func records(c *kbd.Container) []keyRecord {
	keys := c.Keys()
	out := make([]keyRecord, len(keys))
	for i, k := range keys {
		out[i] = keyRecord{
			Row:    k.Row,
			Col:    k.Col,
			Type:   k.Key.Type.String(),
			Label:  k.Key.Label,
			X:      round(k.Frame.X),
			Y:      round(k.Frame.Y),
			Width:  round(k.Frame.Width),
			Height: round(k.Frame.Height),
			Color:  k.Colors.Color.Hex(),
		}
	}
	return out
}

// round keeps three decimals so solver noise does not reach the output.
func round(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // no "-0" in output
	}
	return r
}

func writeFrames(w io.Writer, c *kbd.Container, format string) error {
	recs := records(c)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tTYPE\tLABEL\tX\tY\tWIDTH\tHEIGHT")
		for _, r := range recs {
			fmt.Fprintf(tw, "key%dx%d\t%s\t%s\t%g\t%g\t%g\t%g\n", r.Col, r.Row, r.Type, r.Label, r.X, r.Y, r.Width, r.Height)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func runFrames(cmd *cobra.Command, args []string) error {
	return withContainer(func(c *kbd.Container) error {
		return writeFrames(cmd.OutOrStdout(), c, outputFormat)
	})
}

func writeConstraints(w io.Writer, c *kbd.Container) {
	for _, line := range c.ConstraintStrings() {
		fmt.Fprintln(w, line)
	}
	if broken := c.Broken(); len(broken) > 0 {
		fmt.Fprintf(w, "\n# %d dropped\n", len(broken))
		for _, b := range broken {
			fmt.Fprintln(w, constraint.Format(b, c.Registry()))
		}
	}
}

func runConstraints(cmd *cobra.Command, args []string) error {
	return withContainer(func(c *kbd.Container) error {
		writeConstraints(cmd.OutOrStdout(), c)
		return nil
	})
}

// terminalColumns returns --cols, or the terminal width, or 80.
func terminalColumns() int {
	if columns > 0 {
		return columns
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func runPreview(cmd *cobra.Command, args []string) error {
	return withContainer(func(c *kbd.Container) error {
		fmt.Fprintln(cmd.OutOrStdout(), renderPreview(c, terminalColumns()))
		return nil
	})
}

func runWatch(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("watch needs --config")
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	c, err := install(logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderPreview(c, terminalColumns()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fallback, err := builtin(keyboardName)
	if err != nil {
		return err
	}
	return config.Watch(ctx, configPath, func(f *config.File, err error) {
		if err != nil {
			logger.Error("reload failed", zap.String("path", configPath), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "reload %s: %v\n", configPath, err)
			return
		}
		if err := c.Install(f.KeyboardOr(fallback), kbd.ParametersFrom(f)); err != nil {
			logger.Error("install failed", zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "install: %v\n", err)
			return
		}
		logger.Info("reloaded", zap.String("path", configPath))
		fmt.Fprintln(out, renderPreview(c, terminalColumns()))
	})
}
