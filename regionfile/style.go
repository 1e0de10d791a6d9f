package regionfile

import "fmt"

// Viewer and version named in the banner line.
const (
	Viewer        = "DS9"
	ViewerVersion = "4.1"
)

// Font describes a DS9 font specification.
type Font struct {
	Type   string  // helvetica, times, courier
	Size   float64 // points
	Weight string  // normal, bold
	Family string  // roman, italic
}

func (f Font) String() string {
	return fmt.Sprintf("%s %.1f %s %s", f.Type, f.Size, f.Weight, f.Family)
}

// Style holds the rendering attributes shared by all shapes in a file.
type Style struct {
	Color string
	Width int
	Font  Font
}

// DefaultStyle returns blue, width 2, "helvetica 10 normal roman".
func DefaultStyle() Style {
	return Style{
		Color: "blue",
		Width: 2,
		Font: Font{
			Type:   "helvetica",
			Size:   10,
			Weight: "normal",
			Family: "roman",
		},
	}
}

// GlobalLine renders the "global" directive for s. The interaction flags are
// fixed.
func (s Style) GlobalLine() string {
	return fmt.Sprintf(
		"global color=%s dashlist=8 3 width=%d font=\"%s\" select=1 highlite=1 dash=0 fixed=0 edit=1 move=1 delete=1 include=1 source=1",
		s.Color, s.Width, s.Font,
	)
}
