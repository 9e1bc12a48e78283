package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kspace/config"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	workers    int
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:   "kspace",
		Short: "kspace explores momentum-space properties of lattice models",
		Long: `kspace samples Fermi surfaces of tight-binding lattices and computes
Luttinger-Tisza band structures of classical spin models along k-space paths.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Run file (YAML, or JSON by extension); empty uses the defaults")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().IntVar(&g.workers, "workers", 0, "Concurrent k-points; 0 keeps the run file value")

	root.AddCommand(newFermiCmd(g), newBandsCmd(g), newVersionCmd())

	return root
}

// load reads the run file (or the defaults) and applies flag overrides.
func (g *globals) load() (*config.File, error) {
	f := config.Default()
	if g.configPath != "" {
		var err error
		if f, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}
	if g.workers > 0 {
		f.Fermi.Workers = g.workers
		f.Bands.Workers = g.workers
	}

	return f, nil
}

// logger builds a text handler on stderr at the requested level.
func (g *globals) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level %q: %w", g.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
