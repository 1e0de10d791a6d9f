package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnsupportedCoordinateSystem is returned for a ctype outside the
	// equatorial family.
	ErrUnsupportedCoordinateSystem = errors.New("unsupported coordinate system")
	// ErrUnsupportedEpoch is returned for an epoch other than 1950 or 2000.
	ErrUnsupportedEpoch = errors.New("unsupported epoch")
	// ErrInvalidCoordinate is returned when the sexagesimal text cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// FrameFK5 is the canonical output frame of every normalised position.
const FrameFK5 = "fk5"

// Position is a J2000 FK5 sky position in decimal degrees.
type Position struct {
	RA  float64
	Dec float64
}

// Normalizer converts catalog positions to FK5 J2000.
type Normalizer struct {
	obsJD float64
}

// NormalizerOption customises a Normalizer.
type NormalizerOption func(*Normalizer)

// WithObservationTime sets the epoch of observation used when rotating B1950
// positions. The default is the B1950 equinox itself.
func WithObservationTime(t time.Time) NormalizerOption {
	return func(n *Normalizer) {
		n.obsJD = julianDate(t)
	}
}

// NewNormalizer constructs a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{obsJD: jdB1950}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize parses coord as "HH:MM:SS.s ±DD:MM:SS.s" in the frame implied by
// epoch and returns the FK5 J2000 position. Epoch 1950 is FK4 B1950 and is
// rotated; epoch 2000 is already FK5 J2000 and is returned as parsed.
func (n *Normalizer) Normalize(coord, ctype string, epoch float64) (Position, error) {
	if !isEquatorial(ctype) {
		return Position{}, fmt.Errorf("%w: %q", ErrUnsupportedCoordinateSystem, ctype)
	}
	if epoch != 1950 && epoch != 2000 {
		return Position{}, fmt.Errorf("%w: %v", ErrUnsupportedEpoch, epoch)
	}

	ra, dec, err := ParseSexagesimal(coord)
	if err != nil {
		return Position{}, err
	}

	if epoch == 1950 {
		ra, dec = fk4ToFK5(ra, dec, n.obsJD)
	}
	return Position{RA: ra, Dec: dec}, nil
}

func isEquatorial(ctype string) bool {
	c := strings.ToLower(strings.TrimSpace(ctype))
	return strings.Contains(c, "equatorial") || c == "fk4" || c == "fk5"
}

// ParseSexagesimal parses an hour-angle right ascension and a degree
// declination, either colon separated ("17:44:09.697 -28:21:57.60") or space
// separated ("17 44 09.697 -28 21 57.60"). It returns both in degrees.
func ParseSexagesimal(text string) (raDeg, decDeg float64, err error) {
	raText, decText, err := splitCoordinate(text)
	if err != nil {
		return 0, 0, err
	}

	raNeg, h, err := parseBase60(raText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: right ascension %q: %v", ErrInvalidCoordinate, raText, err)
	}
	if raNeg || h >= 24 {
		return 0, 0, fmt.Errorf("%w: right ascension %q out of range", ErrInvalidCoordinate, raText)
	}

	decNeg, d, err := parseBase60(decText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: declination %q: %v", ErrInvalidCoordinate, decText, err)
	}
	if d > 90 {
		return 0, 0, fmt.Errorf("%w: declination %q out of range", ErrInvalidCoordinate, decText)
	}
	if decNeg {
		d = -d
	}
	return h * 15.0, d, nil
}

func splitCoordinate(text string) (string, string, error) {
	parts := strings.Fields(text)
	switch len(parts) {
	case 2:
		return parts[0], parts[1], nil
	case 6:
		return strings.Join(parts[:3], ":"), strings.Join(parts[3:], ":"), nil
	default:
		return "", "", fmt.Errorf("%w: %q: expected right ascension and declination", ErrInvalidCoordinate, text)
	}
}

// parseBase60 parses "A[:B[:C]]" into A + B/60 + C/3600. The sign is taken
// from the leading character so that "-00:30:00" keeps its sign.
func parseBase60(s string) (bool, float64, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return false, 0, fmt.Errorf("too many components")
	}
	var total float64
	scale := 1.0
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false, 0, fmt.Errorf("component %q is not a number", p)
		}
		if i > 0 && v >= 60 {
			return false, 0, fmt.Errorf("component %q must be below 60", p)
		}
		total += v / scale
		scale *= 60
	}
	return neg, total, nil
}
