package regionfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleEntry(label string) Entry {
	return Entry{
		Kind: "circle",
		Params: []Param{
			{Value: 10, Text: "10.00000"},
			{Value: -5, Text: "-5.00000"},
			{Value: 1.0 / 3600, Text: `1"`},
		},
		Label:   label,
		Comment: TextComment(label),
		Style:   DefaultStyle(),
	}
}

func TestEncode_HeaderAndEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "fk5", []Entry{sampleEntry("a"), sampleEntry("b, faint")}, DefaultStyle()); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"# Region file for: DS9 version 4.1",
		`global color=blue dashlist=8 3 width=2 font="helvetica 10.0 normal roman" select=1 highlite=1 dash=0 fixed=0 edit=1 move=1 delete=1 include=1 source=1`,
		"fk5",
		`circle(10.00000, -5.00000, 1") # text={a}`,
		`circle(10.00000, -5.00000, 1") # text={b, faint}`,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncode_EmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "fk5", nil, DefaultStyle()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Fatalf("expected 3 header lines, got %d", n)
	}
}

func TestEntryLine_AppendsStyleOverrides(t *testing.T) {
	e := sampleEntry("x")
	e.Style.Color = "red"
	e.Style.Font.Weight = "bold"

	got := e.Line(DefaultStyle())
	want := `circle(10.00000, -5.00000, 1") # text={x} color=red font="helvetica 10.0 bold roman"`
	if got != want {
		t.Fatalf("Line = %q, want %q", got, want)
	}

	e.Style = Style{}
	if got := e.Line(DefaultStyle()); got != `circle(10.00000, -5.00000, 1") # text={x}` {
		t.Fatalf("zero style should add nothing, got %q", got)
	}
}

func TestGlobalLine_CustomStyle(t *testing.T) {
	s := Style{Color: "green", Width: 1, Font: Font{Type: "times", Size: 12.5, Weight: "bold", Family: "italic"}}
	got := s.GlobalLine()
	if !strings.HasPrefix(got, `global color=green dashlist=8 3 width=1 font="times 12.5 bold italic" select=1`) {
		t.Fatalf("GlobalLine = %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriterFailure(t *testing.T) {
	err := Encode(failingWriter{}, "fk5", []Entry{sampleEntry("a")}, DefaultStyle())
	if !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
}

func TestWrite_CreatesAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.reg")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Write(path, "fk5", []Entry{sampleEntry("a")}, DefaultStyle()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "stale") || strings.Count(string(data), "\n") != 4 {
		t.Fatalf("file not truncated:\n%s", data)
	}
}

func TestWrite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.reg")
	if err := Write(path, "fk5", nil, DefaultStyle()); !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
}
