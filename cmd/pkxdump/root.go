package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/pkxcodec/internal/config"
	"github.com/udisondev/pkxcodec/internal/personal"
	"github.com/udisondev/pkxcodec/pkx"
)

type flags struct {
	configPath string
	gen        string
	personal   string
	workers    int
	out        string
	logLevel   string
	encrypt    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	a := &app{}

	root := &cobra.Command{
		Use:           "pkxdump",
		Short:         "Inspect and repair entity records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.gen, "gen", "", "record generation: 1, 2, 4-9 or lgpe")
	pf.StringVar(&f.personal, "personal", "", "YAML personal table")
	pf.IntVar(&f.workers, "workers", 0, "files processed in parallel")
	pf.StringVar(&f.out, "out", "", "output directory")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	fix := &cobra.Command{
		Use:   "fix FILE...",
		Short: "Refresh the checksum and write the record back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd.Context(), args, a.fix)
		},
	}
	fix.Flags().BoolVar(&f.encrypt, "encrypt", true, "encrypt the written record")

	root.AddCommand(
		&cobra.Command{
			Use:   "inspect FILE...",
			Short: "Log a summary of each record",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.each(cmd.Context(), args, a.inspect)
			},
		},
		fix,
		&cobra.Command{
			Use:   "decrypt FILE...",
			Short: "Write each record decrypted",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.each(cmd.Context(), args, a.decrypt)
			},
		},
	)
	return root
}

// setup merges the config file with explicitly set flags.
func (a *app) setup(cmd *cobra.Command, f flags) error {
	cfg, err := config.LoadTool(f.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	changed := cmd.Flags().Changed
	if changed("gen") {
		cfg.Generation = f.gen
	}
	if changed("personal") {
		cfg.PersonalPath = f.personal
	}
	if changed("workers") {
		cfg.Workers = max(f.workers, 1)
	}
	if changed("out") {
		cfg.OutputDir = f.out
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("encrypt") {
		cfg.Encrypt = f.encrypt
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	if a.gen, err = pkx.ParseGeneration(cfg.Generation); err != nil {
		return err
	}
	if cfg.PersonalPath != "" {
		tbl, err := personal.Load(cfg.PersonalPath)
		if err != nil {
			return err
		}
		a.personal = tbl
		a.log.Debug("personal table loaded", "path", cfg.PersonalPath, "rows", tbl.Len())
	}
	if cmd.Name() != "inspect" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	a.cfg = cfg
	a.log.Debug("config loaded",
		"gen", a.gen,
		"workers", cfg.Workers,
		"out", cfg.OutputDir,
		"encrypt", cfg.Encrypt)
	return nil
}
