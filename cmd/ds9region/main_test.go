package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestExportDefaultsToBensonSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.reg")

	out, _, err := execute(t, "--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "Found 24 / 46 matches.")
	require.Contains(t, out, "Wrote 24 regions to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3+24)
	require.Equal(t, "# Region file for: DS9 version 4.1", lines[0])
	require.Equal(t, "fk5", lines[2])
}

func TestExportCatalogFileWithSkips(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.json")
	outPath := filepath.Join(dir, "out.reg")
	doc := `[
  {"name": "A", "coord": "17:44:09.697 -28:21:57.60", "ctype": "equatorial", "epoch": 1950,
   "stype": "ellipse", "shape": "1.70, 1.10, 0.0", "sunit": "arcsec", "text": ""},
  {"name": "B", "coord": "17:44:09.697 -28:21:57.60", "ctype": "galactic", "epoch": 1950,
   "stype": "ellipse", "shape": "1.70, 1.10, 0.0", "sunit": "arcsec"}
]`
	require.NoError(t, os.WriteFile(catalogPath, []byte(doc), 0o644))

	out, _, err := execute(t, "export", "--catalog", catalogPath, "--search", "", "--out", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "Found 2 / 2 matches.")
	require.Contains(t, out, "(1 skipped)")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `ellipse(266.83126, -28.38331, 1.70", 1.10", 0.0) # text={A}`)
	require.NotContains(t, string(data), "text={B}")
}

func TestExportStyleFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.reg")
	_, _, err := execute(t, "--out", path, "--color", "red", "--width", "1", "--font-size", "12")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `global color=red dashlist=8 3 width=1 font="helvetica 12.0 normal roman"`)
}

func TestExportWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.reg")
	out, _, err := execute(t, "--out", path)
	require.Error(t, err)
	require.Contains(t, out, "Found 24 / 46 matches.")
}

func TestExportWritesMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "regions.prom")
	_, _, err := execute(t, "--out", filepath.Join(dir, "s.reg"), "--metrics-file", metricsPath, "--workers", "4")
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `regions_records_total{outcome="written"} 24`)
	require.Contains(t, string(data), "regions_catalog_records 46")
}

func TestConfigFileAndValidation(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "regions.yaml")
	outPath := filepath.Join(dir, "depree.reg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search: dePree\noutname: "+outPath+"\n"), 0o644))

	out, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Found 22 / 46 matches.")

	_, _, err = execute(t, "--width", "0", "--out", filepath.Join(dir, "x.reg"))
	require.Error(t, err)
}

func TestSearchListsMatches(t *testing.T) {
	out, _, err := execute(t, "search", "F10")
	require.NoError(t, err)
	require.Contains(t, out, "F10.37")
	require.Contains(t, out, "F10,38")
	require.NotContains(t, out, "F1a")

	out, _, err = execute(t, "search", "no-such-region")
	require.NoError(t, err)
	require.Contains(t, out, "Found 0 / 46 matches.")
}

func TestTableRendersUnionOfColumns(t *testing.T) {
	out, _, err := execute(t, "table", "--search", "Benson")
	require.NoError(t, err)
	upper := strings.ToUpper(out)
	for _, col := range []string{"NAME", "COORD", "EPOCH", "FREQ", "FUNIT"} {
		require.Contains(t, upper, col)
	}
	require.Contains(t, out, "Benson, 1984")
}
