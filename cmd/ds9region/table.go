package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/signalsfoundry/ds9-regions/catalog"
)

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the matching records as a reconciled table",
		Long: `Print the matching records as one table whose columns are the union of
every record's fields. Cells a record lacks hold the zero value of the column type.`,
		Args: cobra.NoArgs,
		RunE: a.runTable,
	}
}

func (a *app) runTable(cmd *cobra.Command, _ []string) error {
	c, err := a.loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	selected := catalog.Filter(c.Records(), a.cfg.Search)
	t := catalog.ReconcileRecords(selected)

	header, rows := t.Strings()
	if len(header) == 0 {
		fmt.Fprintln(a.out, "No records.")
		return nil
	}
	cols := make([]any, len(header))
	for i, h := range header {
		cols[i] = h
	}

	table := tablewriter.NewWriter(a.out)
	table.Header(cols...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
