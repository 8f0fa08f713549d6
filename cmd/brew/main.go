// brew drives the old two-button coffee machine through its touchscreen adapter.
//
// Usage:
//
//	brew first second         # press selections in order
//	brew --repeat 3 1         # press the first selection three times
//	echo second | brew -      # read selections from stdin, one per line
//	brew menu                 # list the touchscreen selections
//	brew touch                # interactive touchscreen
//	brew version
//
// Selections are "first" (1, a) and "second" (2, b). With no selection
// arguments, the sequence from .brew.yaml is pressed.
//
// stdout carries only what the machine prints; diagnostics go to stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/brew/internal/config"
	"github.com/dkoosis/brew/internal/version"
	"github.com/dkoosis/brew/pkg/machine"
	"github.com/dkoosis/brew/pkg/panel"
	"github.com/dkoosis/brew/pkg/render"
	"github.com/dkoosis/brew/pkg/touchscreen"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options carries what run resolved before dispatching.
type options struct {
	cfg  *config.ResolvedConfig
	args []string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	fs := flag.NewFlagSet("brew", flag.ContinueOnError)
	fs.SetOutput(stderr)
	themeFlag := fs.String("theme", "", "Theme: default, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable colors")
	debugFlag := fs.Bool("debug", false, "Print debug traces to stderr")
	repeatFlag := fs.Int("repeat", config.DefaultRepeat, "Repeat the selection sequence N times")
	configFlag := fs.String("config", "", "Path to config file (default: ./.brew.yaml or ~/.config/brew/.brew.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	flags := config.CliFlags{
		ThemeName: *themeFlag,
		NoColor:   *noColorFlag,
		Debug:     *debugFlag,
		Repeat:    *repeatFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		case "repeat":
			flags.RepeatSet = true
		}
	})

	file, path, err := loadFile(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "brew: %v\n", err)
		return 2
	}
	cfg, err := config.Resolve(flags, file)
	if err != nil {
		fmt.Fprintf(stderr, "brew: %v\n", err)
		return 2
	}
	debugf(cfg, stderr, "config file=%q theme=%s(%s) no_color=%t(%s) repeat=%d(%s) sequence=%v(%s)",
		path, cfg.Theme, cfg.ThemeSource, cfg.NoColor, cfg.NoColorSource, cfg.Repeat, cfg.RepeatSource,
		cfg.Sequence, cfg.SequenceSource)

	opts := options{cfg: cfg, args: fs.Args()}
	if len(opts.args) > 0 {
		switch opts.args[0] {
		case "menu", "touch":
			if len(opts.args) > 1 {
				fmt.Fprintf(stderr, "brew %s: unexpected arguments: %s\n", opts.args[0], strings.Join(opts.args[1:], " "))
				return 2
			}
		}
		switch opts.args[0] {
		case "menu":
			return runMenu(opts, stdout)
		case "touch":
			return runTouch(opts, stderr)
		}
	}
	return runPress(opts, stdin, stdout, stderr)
}

func loadFile(path string) (*config.FileConfig, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	return config.LoadDefault()
}

// runPress presses the requested selections on a legacy machine bound to stdout.
func runPress(opts options, stdin io.Reader, stdout, stderr io.Writer) int {
	sels, err := selections(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "brew: %v\n", err)
		return 2
	}
	if len(sels) == 0 {
		fmt.Fprintf(stderr, "brew: no selections (try: brew first second, or brew menu)\n")
		return 2
	}

	screen, err := touchscreen.NewAdapter(machine.NewWithWriter(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "brew: %v\n", err)
		return 1
	}
	for i := 0; i < opts.cfg.Repeat; i++ {
		debugf(opts.cfg, stderr, "round %d: %d selection(s)", i+1, len(sels))
		if err := touchscreen.PressAll(screen, sels); err != nil {
			fmt.Fprintf(stderr, "brew: %v\n", err)
			return 1
		}
	}
	return 0
}

// selections resolves what to press: arguments, then stdin ("-"), then the config sequence.
func selections(opts options, stdin io.Reader) ([]touchscreen.Selection, error) {
	args := opts.args
	if len(args) == 1 && args[0] == "-" {
		return readSelections(stdin)
	}
	if len(args) > 0 {
		return touchscreen.ParseSelections(args)
	}
	return opts.cfg.Sequence, nil
}

func readSelections(r io.Reader) ([]touchscreen.Selection, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return touchscreen.ParseSelections(names)
}

func runMenu(opts options, stdout io.Writer) int {
	themeName := opts.cfg.Theme
	if !isTTYWriter(stdout) {
		themeName = "mono"
	}
	width, _ := termSize(stdout)
	fmt.Fprint(stdout, render.NewMenu(render.ThemeByName(themeName), width).Render(touchscreen.Selections))
	return 0
}

func runTouch(opts options, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := &panel.OutputLog{}
	screen, err := touchscreen.NewAdapter(machine.NewWithWriter(log))
	if err != nil {
		fmt.Fprintf(stderr, "brew touch: %v\n", err)
		return 1
	}
	if err := panel.Run(ctx, screen, log, render.ThemeByName(opts.cfg.Theme)); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "brew touch: %v\n", err)
		return 1
	}
	debugf(opts.cfg, stderr, "touch session pressed %d selection(s)", len(log.Lines()))
	return 0
}

func debugf(cfg *config.ResolvedConfig, stderr io.Writer, format string, args ...any) {
	if !cfg.Debug {
		return
	}
	fmt.Fprintf(stderr, "[DEBUG] "+format+"\n", args...)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
