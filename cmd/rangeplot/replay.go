package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/midbel/rangeplot"
	"github.com/midbel/rangeplot/internal/config"
	"github.com/midbel/rangeplot/internal/log"
)

var errEvent = errors.New("unknown event")

const (
	eventDown  = "down"
	eventMove  = "move"
	eventUp    = "up"
	eventLeave = "leave"
)

// event is a pointer event. X is relative to the left of the widget.
type event struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
}

type script struct {
	Events []event `yaml:"events"`
}

func loadScript(file string) ([]event, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var s script
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s.Events, nil
}

func replayCmd() *cobra.Command {
	var (
		envFile string
		events  string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "replay --events <script.yaml> <widget.yaml>",
		Short: "Replay pointer events on a widget",
		Long: `Replay the pointer events of a script on a widget, print each value
proposed by the brush then render the final state.
` + envHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("output") {
				opts = append(opts, config.WithOutputDir(output))
			}
			cfg, err := loadConfig(envFile, opts...)
			if err != nil {
				return err
			}
			evs, err := loadScript(events)
			if err != nil {
				return err
			}
			file, err := config.LoadWidget(args[0])
			if err != nil {
				return err
			}
			logger := log.NewLogger(cfg).With("widget", args[0])
			switch file.Type {
			case config.DataTime:
				k, err := timeKind(file.TimeFormat)
				if err != nil {
					return err
				}
				return replayWith(cmd.OutOrStdout(), k, file, evs, cfg, logger)
			default:
				return replayWith(cmd.OutOrStdout(), numberKind(), file, evs, cfg, logger)
			}
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVarP(&events, "events", "e", "", "Script of pointer events")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Directory of the rendered file")
	cmd.MarkFlagRequired("events")

	return cmd
}

func replayWith[T rangeplot.ScalerConstraint](w io.Writer, k kind[T], file config.WidgetFile, events []event, cfg config.AppConfig, logger *log.Logger) error {
	s, err := newSession(k, file, cfg, logger.Slog())
	if err != nil {
		return err
	}
	if err := s.apply(events); err != nil {
		return err
	}
	for _, v := range s.emitted {
		fmt.Fprintf(w, "%s\t%s\n", s.format(v.Lo), s.format(v.Hi))
	}
	out := file.OutputFile(cfg.OutputDir())
	if _, err := s.writeFile(out); err != nil {
		return err
	}
	logger.Info("events replayed", "events", len(events), "emitted", len(s.emitted), "output", out)
	return nil
}
