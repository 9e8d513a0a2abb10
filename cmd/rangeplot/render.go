package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/rangeplot"
	"github.com/midbel/rangeplot/internal/config"
	"github.com/midbel/rangeplot/internal/log"
)

func renderCmd() *cobra.Command {
	var (
		envFile string
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "render <widget.yaml>...",
		Short: "Render widget files to SVG",
		Long:  "Render each widget file to an SVG file named after it.\n" + envHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("output") {
				opts = append(opts, config.WithOutputDir(output))
			}
			if cmd.Flags().Changed("workers") {
				opts = append(opts, config.WithWorkers(workers))
			}
			cfg, err := loadConfig(envFile, opts...)
			if err != nil {
				return err
			}
			return renderAll(cmd.Context(), cfg, log.NewLogger(cfg), args)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory of the rendered files")
	cmd.Flags().IntVarP(&workers, "workers", "w", config.DefaultWorkers, "Widgets rendered concurrently")

	return cmd
}

// renderAll renders files concurrently and stops at the first failure.
func renderAll(ctx context.Context, cfg config.AppConfig, logger *log.Logger, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Workers())
	for _, f := range files {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(f, cfg, logger.With("widget", f))
		})
	}
	return grp.Wait()
}

func renderFile(path string, cfg config.AppConfig, logger *log.Logger) error {
	file, err := config.LoadWidget(path)
	if err != nil {
		return err
	}
	switch file.Type {
	case config.DataTime:
		k, err := timeKind(file.TimeFormat)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return renderWith(k, file, cfg, logger)
	default:
		return renderWith(numberKind(), file, cfg, logger)
	}
}

func renderWith[T rangeplot.ScalerConstraint](k kind[T], file config.WidgetFile, cfg config.AppConfig, logger *log.Logger) error {
	s, err := newSession(k, file, cfg, logger.Slog())
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}
	out := file.OutputFile(cfg.OutputDir())
	desc, err := s.writeFile(out)
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}
	logger.Info("widget rendered", "output", out, "marks", len(desc.Marks), "ticks", len(desc.Ticks))
	return nil
}
