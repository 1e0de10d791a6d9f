package core

import (
	"math"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Julian dates of the two recognised equinoxes.
var (
	jdJ2000 = satellite.JDay(2000, 1, 1, 12, 0, 0)
	// Besselian epoch B1950.0 (JD 2415020.31352 + 50 tropical years).
	jdB1950 = 2415020.31352 + 50*365.242198781
)

// B1950 -> J2000 rotation (Murray 1989, A&A 218, 325, eq. 28).
var b1950ToJ2000 = Mat3{
	{0.9999256794956877, -0.0111814832204662, -0.0048590038153592},
	{0.0111814832391717, 0.9999374848933135, -0.0000271625947142},
	{0.0048590037723143, -0.0000271702937440, 0.9999881946023742},
}

// Correction for FK4 being a rotating frame, per Julian century since 1950.
var fk4Rotation = Mat3{
	{-0.0026455262e-6, -1.1539918689e-6, +2.1111346190e-6},
	{+1.1540628161e-6, -0.0129042997e-6, +0.0236021478e-6},
	{-2.1112979048e-6, -0.0056024448e-6, +0.0102587734e-6},
}

// julianDate converts t to a Julian date with sub-second precision.
func julianDate(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	return jd + float64(t.Nanosecond())/1e9/86400.0
}

// julianYear returns the Julian epoch of a Julian date.
func julianYear(jd float64) float64 {
	return 2000.0 + (jd-jdJ2000)/365.25
}

// fk4ETerms returns the E-terms of aberration vector for the B1950 equinox.
func fk4ETerms() Vec3 {
	const k = 0.0056932 * degToRad

	// Eccentricity and mean longitude of perigee of the solar orbit are
	// evaluated at the equinox itself (T = 0 centuries from B1950).
	e := 0.01673011
	g := 1015489.951 / 3600.0 * degToRad

	// IAU 1980 mean obliquity.
	T := (jdB1950 - jdJ2000) / 36525.0
	obl := (((0.001813*T-0.00059)*T-46.8150)*T + 84381.448) / 3600.0 * degToRad

	return Vec3{
		X: e * k * math.Sin(g),
		Y: -e * k * math.Cos(g) * math.Cos(obl),
		Z: -e * k * math.Cos(g) * math.Sin(obl),
	}
}

// fk4ToFK5 converts a B1950 FK4 position to J2000 FK5. obsJD is the epoch of
// observation used for the FK4 rotation correction.
func fk4ToFK5(raDeg, decDeg, obsJD float64) (float64, float64) {
	r := unitVector(raDeg, decDeg)

	// Remove the E-terms of aberration and renormalise.
	a := fk4ETerms()
	r = r.Sub(a).Add(r.Scale(a.Dot(r)))
	r = r.Scale(1 / r.Norm())

	T := (julianYear(obsJD) - 1950.0) / 100.0
	b := b1950ToJ2000.AddScaled(fk4Rotation, T)

	return sphericalDegrees(b.Apply(r))
}
