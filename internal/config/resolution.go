package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/brew/pkg/render"
	"github.com/dkoosis/brew/pkg/touchscreen"
)

// Sources a resolved value can come from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ThemeName string
	NoColor   bool
	Debug     bool
	Repeat    int

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	DebugSet   bool
	RepeatSet  bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Theme    string
	NoColor  bool
	Debug    bool
	Repeat   int
	Sequence []touchscreen.Selection

	// Resolution metadata (for debugging)
	ThemeSource    string
	NoColorSource  string
	DebugSource    string
	RepeatSource   string
	SequenceSource string
}

// Resolve merges flags, environment and file into a ResolvedConfig.
// file may be nil.
func Resolve(flags CliFlags, file *FileConfig) (*ResolvedConfig, error) {
	if file == nil {
		file = &FileConfig{}
	}
	r := &ResolvedConfig{
		Theme:          DefaultTheme,
		Repeat:         DefaultRepeat,
		ThemeSource:    SourceDefault,
		NoColorSource:  SourceDefault,
		DebugSource:    SourceDefault,
		RepeatSource:   SourceDefault,
		SequenceSource: SourceDefault,
	}

	// Theme: CLI > ENV > file > default
	switch {
	case flags.ThemeName != "":
		r.Theme, r.ThemeSource = flags.ThemeName, SourceCLI
	case os.Getenv("BREW_THEME") != "":
		r.Theme, r.ThemeSource = os.Getenv("BREW_THEME"), SourceEnv
	case file.Theme != "":
		r.Theme, r.ThemeSource = file.Theme, SourceFile
	}

	// NoColor: CLI > ENV > file > default
	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
	} else if v := getEnvBool("BREW_NO_COLOR", "NO_COLOR"); v != nil {
		r.NoColor, r.NoColorSource = *v, SourceEnv
	} else if file.NoColor != nil {
		r.NoColor, r.NoColorSource = *file.NoColor, SourceFile
	}

	// Debug: CLI > ENV > file > default
	if flags.DebugSet {
		r.Debug, r.DebugSource = flags.Debug, SourceCLI
	} else if os.Getenv("BREW_DEBUG") != "" {
		r.Debug, r.DebugSource = true, SourceEnv
	} else if file.Debug != nil {
		r.Debug, r.DebugSource = *file.Debug, SourceFile
	}

	// Repeat: CLI > file > default
	if flags.RepeatSet {
		r.Repeat, r.RepeatSource = flags.Repeat, SourceCLI
	} else if file.Repeat != 0 {
		r.Repeat, r.RepeatSource = file.Repeat, SourceFile
	}

	if len(file.Sequence) > 0 {
		seq, err := touchscreen.ParseSelections(file.Sequence)
		if err != nil {
			return nil, fmt.Errorf("config validation failed: sequence: %w", err)
		}
		r.Sequence, r.SequenceSource = seq, SourceFile
	}

	if r.NoColor {
		r.Theme, r.ThemeSource = "mono", r.NoColorSource
	}

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// NO_COLOR follows no-color.org: any non-empty value that is not a boolean
// counts as true.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			b = true
		}
		return &b
	}
	return nil
}

func validate(cfg *ResolvedConfig) error {
	known := false
	for _, name := range render.ThemeNames() {
		if cfg.Theme == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown theme %q (expected default, mono)", cfg.Theme)
	}
	if cfg.Repeat < 1 {
		return fmt.Errorf("repeat must be positive, got: %d", cfg.Repeat)
	}
	return nil
}
