// Package cli implements the penrose command-line interface.
//
// # Commands
//
//   - render: grow a tiling from one of the seven vertex configurations and
//     write it as SVG
//   - presets: list the configurations
//   - catalogue: list the tilings stored in a SQLite catalogue
//
// Settings come from an optional TOML file (--config) and flags override
// it. All commands support --verbose (-v) for debug logging; the logger is
// passed through context.Context.
package cli
