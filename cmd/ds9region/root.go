package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signalsfoundry/ds9-regions/catalog"
	"github.com/signalsfoundry/ds9-regions/internal/config"
	"github.com/signalsfoundry/ds9-regions/internal/logging"
	"github.com/signalsfoundry/ds9-regions/internal/observability"
	"github.com/signalsfoundry/ds9-regions/model"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	out     io.Writer
	errOut  io.Writer

	cfg      config.Config
	log      logging.Logger
	metrics  *observability.ExportCollector
	shutdown func(context.Context) error
}

// run builds the command tree, executes it with args and flushes tracing.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{v: viper.New(), out: out, errOut: errOut}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	defer func() {
		observability.ShutdownWithTimeout(context.Background(), a.shutdown, a.log)
	}()
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	d := config.Defaults()
	root := &cobra.Command{
		Use:   "ds9region",
		Short: "Export catalog regions as a DS9 region file",
		Long: `ds9region selects records from an HII region catalog by substring search,
converts their positions to FK5 J2000 and writes them as DS9 region shapes.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runExport,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML, JSON or TOML)")
	pf.String("catalog", d.Catalog, "catalog file (.json, .yaml); empty uses the built-in sample")
	pf.StringP("search", "s", d.Search, "substring matched against every string field")
	pf.StringP("out", "o", d.OutName, "region file to write")
	pf.String("color", d.Color, "shape color")
	pf.Int("width", d.Width, "line width")
	pf.String("font-type", d.FontType, "label font type")
	pf.Float64("font-size", d.FontSize, "label font size in points")
	pf.String("font-weight", d.FontWeight, "label font weight")
	pf.String("font-family", d.FontFamily, "label font slant")
	pf.Int("workers", d.Workers, "records processed concurrently")
	pf.String("metrics-file", d.MetricsFile, "write Prometheus metrics in text format to this file after the run")

	for key, flag := range map[string]string{
		"catalog":      "catalog",
		"search":       "search",
		"outname":      "out",
		"color":        "color",
		"width":        "width",
		"fonttype":     "font-type",
		"fontsize":     "font-size",
		"fontweight":   "font-weight",
		"fontfamily":   "font-family",
		"workers":      "workers",
		"metrics_file": "metrics-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(a.exportCmd(), a.searchCmd(), a.tableCmd())
	return root
}

// setup loads configuration and wires logging, tracing and metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	base := logging.New(logging.Config{
		Level:  os.Getenv("REGIONS_LOG_LEVEL"),
		Format: os.Getenv("REGIONS_LOG_FORMAT"),
		Output: a.errOut,
	})
	ctx, log := logging.WithRunLogger(cmd.Context(), base)
	a.log = log

	tracing := observability.TracingConfigFromEnv()
	tracing.Writer = a.errOut
	shutdown, err := observability.InitTracing(ctx, tracing, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	a.shutdown = shutdown

	metrics, err := observability.NewExportCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	a.metrics = metrics

	cmd.SetContext(ctx)
	return nil
}

// loadCatalog reads the configured catalog into an ordered store, keeping
// the catalog-size gauge current as records arrive.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var (
		records []model.RegionRecord
		source  = "built-in sample"
	)
	if a.cfg.Catalog == "" {
		records = catalog.Sample()
	} else {
		var err error
		source = a.cfg.Catalog
		if records, err = catalog.LoadFile(a.cfg.Catalog); err != nil {
			return nil, err
		}
	}

	c := catalog.New()
	unsubscribe := c.Subscribe(func(e catalog.Event) {
		a.metrics.SetCatalogSize(e.Size)
	})
	defer unsubscribe()
	for _, r := range records {
		c.Add(r)
	}

	a.log.Info(ctx, "catalog loaded",
		logging.String("source", source),
		logging.Int("records", c.Len()),
	)
	return c, nil
}

func (a *app) writeMetrics(ctx context.Context) {
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
		a.log.Warn(ctx, "metrics textfile not written", logging.Err(err))
	}
}
