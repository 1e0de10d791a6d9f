package regionfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrOutputWrite wraps any filesystem failure while producing a region file.
var ErrOutputWrite = errors.New("region file write failed")

// Param is one shape parameter: its value in canonical units (degrees) and
// the token emitted in the file.
type Param struct {
	Value float64
	Text  string
}

// Entry is a serialised region ready for emission.
type Entry struct {
	Kind   string
	Params []Param
	Label  string
	// Comment is the pre-rendered attribute comment, e.g. "text={A}".
	Comment string
	Style   Style
}

// Line renders the entry in DS9 syntax. Attributes of the entry's style that
// differ from the file-level style are appended after the comment.
func (e Entry) Line(global Style) string {
	tokens := make([]string, len(e.Params))
	for i, p := range e.Params {
		tokens[i] = p.Text
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s) # %s", e.Kind, strings.Join(tokens, ", "), e.Comment)
	if e.Style.Color != "" && e.Style.Color != global.Color {
		fmt.Fprintf(&b, " color=%s", e.Style.Color)
	}
	if e.Style.Width != 0 && e.Style.Width != global.Width {
		fmt.Fprintf(&b, " width=%d", e.Style.Width)
	}
	if e.Style.Font.Type != "" && e.Style.Font != global.Font {
		fmt.Fprintf(&b, " font=\"%s\"", e.Style.Font)
	}
	return b.String()
}

// TextComment renders the label attribute for a shape line.
func TextComment(label string) string {
	return "text={" + label + "}"
}

// Encode writes the banner, global directive, frame line and one line per
// entry to w, in order.
func Encode(w io.Writer, frame string, entries []Entry, style Style) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Region file for: %s version %s\n", Viewer, ViewerVersion)
	fmt.Fprintln(bw, style.GlobalLine())
	fmt.Fprintln(bw, frame)
	for _, e := range entries {
		fmt.Fprintln(bw, e.Line(style))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// Write creates or truncates path and encodes the region file into it. The
// file is closed on every path; a failure part way leaves whatever was
// written so far.
func Write(path, frame string, entries []Entry, style Style) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %q: %v", ErrOutputWrite, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %q: %v", ErrOutputWrite, path, cerr)
		}
	}()

	if err := Encode(f, frame, entries, style); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
