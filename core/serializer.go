package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/signalsfoundry/ds9-regions/model"
	"github.com/signalsfoundry/ds9-regions/regionfile"
)

// ErrUnsupportedUnit is returned for a shape unit that is not an angle.
var ErrUnsupportedUnit = errors.New("unsupported shape unit")

// Re-exported so callers can classify every per-record failure from core.
var (
	ErrUnsupportedShapeType = model.ErrUnsupportedShapeType
	ErrInvalidShape         = model.ErrInvalidShape
)

// angularUnit converts catalog sizes to degrees and names the DS9 suffix.
type angularUnit struct {
	toDeg  float64
	suffix string
}

func lookupUnit(sunit string) (angularUnit, error) {
	switch strings.ToLower(strings.TrimSpace(sunit)) {
	case "arcsec", "arcsecond", "arcseconds", `"`:
		return angularUnit{toDeg: 1.0 / 3600.0, suffix: `"`}, nil
	case "arcmin", "arcminute", "arcminutes", "'":
		return angularUnit{toDeg: 1.0 / 60.0, suffix: "'"}, nil
	case "deg", "degree", "degrees":
		return angularUnit{toDeg: 1.0}, nil
	default:
		return angularUnit{}, fmt.Errorf("%w: %q", ErrUnsupportedUnit, sunit)
	}
}

// Serializer turns a record's shape into a region-file entry.
type Serializer struct{}

// SerializeRecord serialises rec at the normalised position pos.
func (s Serializer) SerializeRecord(rec model.RegionRecord, pos Position, style regionfile.Style) (regionfile.Entry, error) {
	return s.Serialize(rec.SType, rec.Shape, rec.SUnit, pos, rec.Label(), style)
}

// Serialize parses shape for kind and builds the entry. Positions and sizes
// are carried in degrees; size tokens keep the catalog text plus the unit
// suffix and angles are passed through verbatim.
func (Serializer) Serialize(kind model.ShapeKind, shape, sunit string, pos Position, label string, style regionfile.Style) (regionfile.Entry, error) {
	params, err := model.ParseShape(kind, shape)
	if err != nil {
		return regionfile.Entry{}, err
	}
	unit, err := lookupUnit(sunit)
	if err != nil {
		return regionfile.Entry{}, err
	}

	out := []regionfile.Param{position(pos.RA), position(pos.Dec)}
	switch p := params.(type) {
	case model.Circle:
		out = append(out, size(p.Radius, unit))
	case model.Ellipse:
		out = append(out, size(p.Major, unit), size(p.Minor, unit), angle(p.Angle))
	case model.Box:
		out = append(out, size(p.Width, unit), size(p.Height, unit), angle(p.Angle))
	case model.Polygon:
		out = append(out, polygonVertices(pos, p, unit)...)
	}

	return regionfile.Entry{
		Kind:    string(params.Kind()),
		Params:  out,
		Label:   label,
		Comment: regionfile.TextComment(label),
		Style:   style,
	}, nil
}

func position(deg float64) regionfile.Param {
	return regionfile.Param{Value: deg, Text: fmt.Sprintf("%.5f", deg)}
}

func size(s model.Size, unit angularUnit) regionfile.Param {
	return regionfile.Param{Value: s.Value * unit.toDeg, Text: s.Raw + unit.suffix}
}

func angle(s model.Size) regionfile.Param {
	return regionfile.Param{Value: s.Value, Text: s.Raw}
}

// polygonVertices places each offset pair relative to the center. The first
// offset is along right ascension on the sky, so it is divided by cos(dec).
func polygonVertices(center Position, p model.Polygon, unit angularUnit) []regionfile.Param {
	cosDec := math.Cos(center.Dec * degToRad)
	out := make([]regionfile.Param, 0, 2*len(p.Offsets))
	for _, off := range p.Offsets {
		dDec := off[1].Value * unit.toDeg
		dRA := off[0].Value * unit.toDeg
		if cosDec != 0 {
			dRA /= cosDec
		}
		ra := math.Mod(center.RA+dRA+360, 360)
		out = append(out, position(ra), position(center.Dec+dDec))
	}
	return out
}
