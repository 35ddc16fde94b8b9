package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"penrose-tiling/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets what --version prints. The main package calls it with
// values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// NewRootCommand builds the command tree. Log output goes to stderr.
func NewRootCommand(stderr io.Writer) *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "penrose",
		Short:         "Penrose grows kite and dart tilings from Ammann bars",
		Long:          `Penrose grows Penrose kite and dart tilings by forcing Ammann bars of a pentagrid until the tiling is determined, and renders the result as SVG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if a.configPath == "" {
				return nil
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("loaded config", "path", a.configPath, "preset", cfg.Preset)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("penrose %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newCatalogueCmd(a))

	return root
}

// Execute runs the CLI until ctx is cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
