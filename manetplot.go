// manetplot draws the MANET protocol comparison charts (PDR, throughput and
// delay against node count) from the simulator's results table.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"manetplot/common"
	"manetplot/evaluation"
	"manetplot/render"
	"manetplot/results"
	"manetplot/savedata"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout))
}

//exit status: 0 on success, 1 when the run fails, 2 for bad flags or config
func runMain(args []string, stdout io.Writer) int {
	cfg, err := parseFlags(flag.NewFlagSet("manetplot", flag.ContinueOnError), args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 2
	}
	logger, err := common.InitLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer logger.Sync()

	if err := run(cfg, stdout); err != nil {
		zap.S().Errorf("%v", err)
		return 1
	}
	return 0
}

//defaults, then the config file, then flags given on the command line
func parseFlags(fs *flag.FlagSet, args []string) (*common.Config, error) {
	def := common.DefaultConfig()
	configPath := fs.String("config", "", "yaml config file")
	input := fs.String("path", def.Input, "results csv file")
	outdir := fs.String("outdir", def.OutputDir, "directory for the images")
	backend := fs.String("backend", def.Chart.Backend, "chart backend: gonum or gochart")
	workers := fs.Int("worker", def.Workers, "number of charts rendered at once")
	sortNodes := fs.Bool("sort", def.Chart.SortByNodes, "order each line by node count instead of row order")
	exportCSV := fs.Bool("csv", def.ExportCSV, "also write "+common.SeriesCSVName)
	summary := fs.Bool("summary", def.Summary, "also write "+common.SummaryName)
	loglevel := fs.String("loglevel", def.Logger.Level, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = common.LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "path":
			cfg.Input = *input
		case "outdir":
			cfg.OutputDir = *outdir
		case "backend":
			cfg.Chart.Backend = *backend
		case "worker":
			cfg.Workers = *workers
		case "sort":
			cfg.Chart.SortByNodes = *sortNodes
		case "csv":
			cfg.ExportCSV = *exportCSV
		case "summary":
			cfg.Summary = *summary
		case "loglevel":
			cfg.Logger.Level = *loglevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *common.Config, stdout io.Writer) error {
	backend, err := render.NewBackend(cfg.Chart.Backend)
	if err != nil {
		return err
	}
	table, err := results.Load(cfg.Input)
	if err != nil {
		return err
	}
	zap.S().Infof("Loaded %d rows from %s", len(table), cfg.Input)

	charted := cfg.ProtocolNames()
	for _, p := range results.Protocols(table) {
		if !slices.Contains(charted, p) {
			zap.S().Warnf("Protocol %q is in %s but not charted", p, cfg.Input)
		}
	}

	charts := make([]*render.Chart, len(common.Metrics))
	for i, m := range common.Metrics {
		if charts[i], err = evaluation.BuildChart(table, m, cfg.Protocols, cfg.Chart.SortByNodes); err != nil {
			return err
		}
	}

	if err := common.Makeoutputdir(cfg.OutputDir); err != nil {
		return err
	}
	fp := common.CheckOutputFiles(cfg.OutputDir)
	opt := render.NewOptions(cfg.Chart.WidthInch, cfg.Chart.HeightInch, cfg.Chart.DPI)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Workers)
	for i, m := range common.Metrics {
		i, m := i, m
		g.Go(func() error {
			//a failed chart stops the ones not started yet
			if ctx.Err() != nil {
				return nil
			}
			path := fp.Charts[m]
			if fp.ChartsExist[m] {
				zap.S().Debugf("Replacing %s", path)
			}
			if err := backend.Save(charts[i], opt, path); err != nil {
				return err
			}
			zap.S().Infof("Wrote %s (%s, %d points)", path, backend.Name(), charts[i].Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.ExportCSV {
		if fp.SeriesCSVExist {
			zap.S().Debugf("Replacing %s", fp.SeriesCSV)
		}
		seriescsv := savedata.NewCSV(fp.SeriesCSV)
		for i, m := range common.Metrics {
			seriescsv.AddChart(m.String(), charts[i])
		}
		if err := seriescsv.CloseCSV(); err != nil {
			return err
		}
		zap.S().Infof("Wrote %s", fp.SeriesCSV)
	}
	if cfg.Summary {
		if fp.SummaryExist {
			zap.S().Debugf("Replacing %s", fp.Summary)
		}
		if err := savedata.SaveJSON(fp.Summary, evaluation.Summarize(table, charted)); err != nil {
			return err
		}
		zap.S().Infof("Wrote %s", fp.Summary)
	}

	names := make([]string, len(common.Metrics))
	for i, m := range common.Metrics {
		names[i] = m.FileName()
	}
	fmt.Fprintf(stdout, "Plots saved as: %s\n", strings.Join(names, ", "))
	return nil
}
