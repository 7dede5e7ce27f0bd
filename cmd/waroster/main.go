package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/uno-labs/waroster/internal/adapters/clipboard"
	"github.com/uno-labs/waroster/internal/adapters/console"
	csvsource "github.com/uno-labs/waroster/internal/adapters/csv"
	"github.com/uno-labs/waroster/internal/adapters/fs"
	"github.com/uno-labs/waroster/internal/app"
	"github.com/uno-labs/waroster/internal/cliconfig"
	"github.com/uno-labs/waroster/internal/ports"
	"github.com/uno-labs/waroster/pkg/log"
)

const helpDescription = `
Add contacts to a WhatsApp group from a Google Forms CSV export.

Highlights:
  - Normalizes local Indonesian numbers (08...) to international +628... form.
  - Deduplicates and splits numbers into policy-sized batches with operator
    checkpoints between them.
  - Reports invalid numbers with their row for manual handling.
  - Resumes an interrupted run at the next batch (--resume).

The tool never talks to WhatsApp itself: it feeds numbers to you (console
driver) or to your clipboard (clipboard driver) for pasting into the group's
member search box.
`

var exampleUsage = strings.TrimSpace(`
  waroster --input DataDigitalTalentHub.csv
  waroster --input export.csv --batch-size 25 --start-batch 3
  waroster --input export.csv --driver clipboard --resume
  waroster --input export.csv --dry-run
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "waroster",
		Short:   "Add contacts to a WhatsApp group from a Google Forms CSV export",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.waroster/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl.Info().Interface("config", cfg).Msg("configuration")

			logger := log.NewZerologAdapterWithLogger(zl)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				// Watch mode re-reports on every change of the export;
				// driving a session per save would be meaningless.
				cfg.DryRun = true

				runOnce := func(ctx context.Context) error {
					return run(ctx, cfg, changed, logger)
				}
				if err := runOnce(ctx); err != nil {
					logger.Error("initial processing failed", log.Err(err))
				}
				err := app.Watch(ctx, cfg.Input, runOnce, logger)
				if err == context.Canceled {
					return nil
				}
				return err
			}

			return run(ctx, cfg, changed, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.waroster/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "path to the Google Forms CSV export")
	root.Flags().IntVar(&cfg.Column, "column", cfg.Column, "1-based column holding the phone number")
	root.Flags().IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "numbers per batch (policy compliance)")
	root.Flags().IntVar(&cfg.StartBatch, "start-batch", cfg.StartBatch, "1-based batch to start from")
	root.Flags().StringVar(&cfg.Driver, "driver", cfg.Driver, "submission driver: console or clipboard")
	root.Flags().DurationVar(&cfg.SubmitDelay, "submit-delay", cfg.SubmitDelay, "pause after each submitted number")
	root.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for run state (defaults to the input's directory)")
	root.Flags().BoolVar(&cfg.Resume, "resume", cfg.Resume, "resume from the last completed batch")
	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "process and report without driving a session")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-report whenever the input file changes (implies dry-run)")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("waroster")
		os.Exit(1)
	}
}

// run executes one full import over the current contents of the input file.
func run(ctx context.Context, cfg cliconfig.Config, changed map[string]bool, logger log.Logger) error {
	digest, err := app.FileSHA256(cfg.Input)
	if err != nil {
		return fmt.Errorf("hash input: %w", err)
	}

	source, err := csvsource.NewSource(cfg.Input, cfg.Column-1, logger)
	if err != nil {
		return err
	}
	defer source.Close()

	var driver ports.Driver
	if !cfg.DryRun {
		switch cfg.Driver {
		case cliconfig.DriverClipboard:
			driver = clipboard.New(logger)
		default:
			driver = console.New(logger, console.WithSubmitDelay(cfg.SubmitDelay))
		}
	}

	runner := app.NewRunner(app.RunnerConfig{
		BatchSize:     cfg.BatchSize,
		StartBatch:    cfg.StartBatch,
		ExplicitStart: changed["start-batch"],
		Resume:        cfg.Resume,
		DryRun:        cfg.DryRun,
		InputSHA256:   digest,
		InputPath:     cfg.Input,
	}, source, driver,
		app.WithLogger(logger),
		app.WithStateRepository(fs.NewStateFile(cfg.StateDir)),
	)

	return runner.Run(ctx)
}
