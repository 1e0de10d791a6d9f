package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/ds9-regions/core"
)

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write matching records to a region file (default command)",
		Args:  cobra.NoArgs,
		RunE:  a.runExport,
	}
}

func (a *app) runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	exp := core.NewExporter(a.cfg.Style(), a.log)
	exp.Metrics = a.metrics
	exp.Workers = a.cfg.Workers

	report, err := exp.Export(ctx, c.Records(), a.cfg.Search, a.cfg.OutName)
	defer a.writeMetrics(ctx)
	fmt.Fprintf(a.out, "Found %d / %d matches.\n", report.Matched, report.Total)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Wrote %d regions to %s", report.Written, a.cfg.OutName)
	if n := len(report.Skipped); n > 0 {
		fmt.Fprintf(a.out, " (%d skipped)", n)
	}
	fmt.Fprintln(a.out)
	return nil
}
