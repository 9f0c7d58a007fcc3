package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/readingschedule/config"
	coremetrics "github.com/kilianp07/readingschedule/core/metrics"
	"github.com/kilianp07/readingschedule/core/model"
	"github.com/kilianp07/readingschedule/core/schedule"
	"github.com/kilianp07/readingschedule/infra/logger"
	"github.com/kilianp07/readingschedule/infra/tabular"
	"github.com/kilianp07/readingschedule/pkg/export"
)

var renderOpts struct {
	out      string
	format   string
	universe string
	variant  string
	policy   string
	year     int
}

var renderCmd = &cobra.Command{
	Use:   "render <input.csv|input.xlsx>",
	Short: "Resolve a roster file into the weekly schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.out, "out", "o", "", "output file, stdout when empty")
	f.StringVarP(&renderOpts.format, "format", "f", "", "json, csv or xlsx; defaults to the --out extension or json")
	f.StringVar(&renderOpts.universe, "universe", "", "explicit or grid")
	f.StringVar(&renderOpts.variant, "variant", "", "force a normalizer: bare, dated or grid")
	f.StringVar(&renderOpts.policy, "policy", "", "location policy: declared or ignore")
	f.IntVar(&renderOpts.year, "year", 0, "year of month/day headers")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if renderOpts.universe != "" {
		cfg.Schedule.Universe = renderOpts.universe
	}
	if renderOpts.variant != "" {
		cfg.Schedule.Variant = renderOpts.variant
	}
	if renderOpts.policy != "" {
		cfg.Schedule.LocationPolicy = schedule.LocationPolicy(renderOpts.policy)
	}
	if renderOpts.year != 0 {
		cfg.Schedule.Year = renderOpts.year
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := outputFormat(renderOpts.format, renderOpts.out)
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()
	table, err := tabular.Read(args[0], in)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	res, err := schedule.NewResolver(cfg.Schedule, logger.NewZerologLoggerTo(cmd.ErrOrStderr(), "render"), sink).Resolve(table)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOpts.out != "" {
		f, err := os.Create(renderOpts.out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	if err := write(w, format, res.Grid, cfg.Export); err != nil {
		return err
	}
	if renderOpts.out != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d rows, %d names)\n", renderOpts.out, len(res.Grid.Rows), res.Stats.Placed)
	}
	return nil
}

func outputFormat(format, out string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	switch format {
	case "":
		return "json", nil
	case "json", "csv", "xlsx":
		return format, nil
	}
	return "", fmt.Errorf("unsupported output format %q", format)
}

func write(w io.Writer, format string, g model.ScheduleGrid, cfg export.Config) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, g)
	case "xlsx":
		return export.WriteXLSX(w, g, cfg)
	default:
		return export.WriteJSON(w, g, cfg)
	}
}
