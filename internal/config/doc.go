// Package config handles configuration loading and merging for brew.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --no-color, --debug, --repeat)
//  2. Environment variables (BREW_THEME, BREW_NO_COLOR, NO_COLOR, BREW_DEBUG)
//  3. YAML config file (.brew.yaml in the working directory or ~/.config/brew/.brew.yaml)
//  4. Hardcoded defaults
//
// # File Format
//
//	theme: mono
//	no_color: false
//	debug: false
//	repeat: 1
//	sequence: [first, second]
//
// The sequence is pressed when brew is run without selection arguments.
package config
