package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/signalsfoundry/ds9-regions/catalog"
	"github.com/signalsfoundry/ds9-regions/model"
)

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "List the records a query selects",
		Long:  "List the records a query selects. A positional query overrides --search.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := a.cfg.Search
			if len(args) == 1 {
				query = args[0]
			}
			return a.runSearch(cmd, query)
		},
	}
}

func (a *app) runSearch(cmd *cobra.Command, query string) error {
	c, err := a.loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	records := c.Records()
	idx := catalog.Match(records, query)
	a.metrics.SetMatched(len(idx))

	fmt.Fprintf(a.out, "Found %d / %d matches.\n", len(idx), len(records))
	if len(idx) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(idx))
	for _, i := range idx {
		r := records[i]
		rows = append(rows, []string{
			strconv.Itoa(i),
			r.Name,
			deref(r.Ref),
			frequency(r),
			r.TextOrEmpty(),
		})
	}

	table := tablewriter.NewWriter(a.out)
	table.Header("Index", "Name", "Ref", "Freq", "Text")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func frequency(r model.RegionRecord) string {
	if r.Freq == nil {
		return ""
	}
	f := strconv.FormatFloat(*r.Freq, 'f', -1, 64)
	if r.FUnit != nil {
		f += " " + *r.FUnit
	}
	return f
}
