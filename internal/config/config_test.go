package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/signalsfoundry/ds9-regions/regionfile"
)

func TestDefaultsMatchDefaultStyle(t *testing.T) {
	d := Defaults()
	if d.Style() != regionfile.DefaultStyle() {
		t.Fatalf("Defaults().Style() = %+v, want %+v", d.Style(), regionfile.DefaultStyle())
	}
	if d.OutName != "sample.reg" || d.Search != "Benson" || d.Catalog != "" {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_NoSourcesYieldsDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_FileEnvAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	content := "color: green\nwidth: 3\nfontsize: 12\nsearch: dePree\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REGIONS_WIDTH", "4")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("search", "", "")
	if err := flags.Parse([]string{"--search", "F1"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	v := viper.New()
	if err := v.BindPFlag("search", flags.Lookup("search")); err != nil {
		t.Fatalf("bind: %v", err)
	}

	cfg, err := Load(v, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Color != "green" || cfg.FontSize != 12 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Width != 4 {
		t.Fatalf("env should override file width, got %d", cfg.Width)
	}
	if cfg.Search != "F1" {
		t.Fatalf("flag should override file search, got %q", cfg.Search)
	}
	if cfg.FontType != "helvetica" {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.FontType)
	}
}

func TestLoad_SearchStringAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	if err := os.WriteFile(path, []byte("searchString: dePree\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Search != "dePree" {
		t.Fatalf("searchString should set search, got %q", cfg.Search)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Width = 0
	cfg.FontSize = -1
	cfg.OutName = " "

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"width", "fontsize", "outname"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
