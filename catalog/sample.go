package catalog

import "github.com/signalsfoundry/ds9-regions/model"

// Sample returns the built-in Sgr B2 HII region catalog: Benson (1984)
// components at 15 and 5 GHz and dePree (1998) components at 42.8 GHz.
// All positions are B1950.
//
// Names repeat across frequencies; each entry is a separate observation.
func Sample() []model.RegionRecord {
	return []model.RegionRecord{
		benson("A", "17:44:09.697 -28:21:57.60", "1.70, 1.10, 0.0", 15.0, ""),
		benson("B", "17:44:10.094 -28:22:00.71", "0.60, 0.54, 0.0", 15.0, ""),
		benson("C", "17:44:10.207 -28:22:16.00", "1.00, 1.00, 0.0", 15.0, "not detected"),
		benson("D", "17:44:10.244 -28:22:10.53", "0.80, 0.58, 0.0", 15.0, ""),
		benson("E", "17:44:10.289 -28:22:06.52", "1.10, 0.61, 0.0", 15.0, ""),
		benson("F", "17:44:10.358 -28:22:02.50", "1.90, 1.10, 0.0", 15.0, ""),
		benson("G", "17:44:10.467 -28:22:00.95", "1.10, 0.48, 0.0", 15.0, ""),
		benson("H", "17:44:10.606 -28:22:42.81", "1.10, 0.80, 0.0", 15.0, ""),
		benson("I", "17:44:10.608 -28:22:02.90", "4.30, 3.30, 0.0", 15.0, ""),
		benson("J", "17:44:10.662 -28:21:53.80", "1.00, 1.00, 0.0", 15.0, "not detected"),
		benson("K", "17:44:10.281 -28:21:11.80", "1.00, 1.00, 0.0", 15.0, "not detected"),
		benson("L", "17:44:12.960 -28:20:54.40", "1.00, 1.00, 0.0", 15.0, "not detected"),
		benson("A", "17:44:09.697 -28:21:57.60", "1.0, 1.0, 0.0", 5.0, "not clear"),
		benson("B", "17:44:10.094 -28:22:00.71", "2.7, 1.6, 0.0", 5.0, ""),
		benson("C", "17:44:10.207 -28:22:16.00", "1.9, 1.1, 0.0", 5.0, ""),
		benson("D", "17:44:10.244 -28:22:10.53", "2.4, 0.7, 0.0", 5.0, ""),
		benson("E", "17:44:10.289 -28:22:06.52", "2.6, 1.6, 0.0", 5.0, ""),
		benson("F", "17:44:10.358 -28:22:02.50", "2.6, 2.1, 0.0", 5.0, ""),
		benson("G", "17:44:10.467 -28:22:00.95", "1.0, 1.0, 0.0", 5.0, "not resolved"),
		benson("H", "17:44:10.606 -28:22:42.81", "2.5, 1.7, 0.0", 5.0, ""),
		benson("I", "17:44:10.608 -28:22:02.90", "4.5, 3.6, 0.0", 5.0, ""),
		benson("J", "17:44:10.662 -28:21:53.80", "4.0, 6.0, 0.0", 5.0, ""),
		benson("K", "17:44:10.281 -28:21:11.80", "13.0, 16.0, 0.0", 5.0, ""),
		benson("L", "17:44:12.960 -28:20:54.40", "6.0, 9.0, 0.0", 5.0, ""),
		dePree("F1a", "17:44:10.3150 -28:22:01.274", "0.130, 0.090, 0.0", ""),
		dePree("F1b", "17:44:10.3032 -28:22:01.613", "0.190, 0.070, 0.0", ""),
		dePree("F1c", "17:44:10.3226 -28:22:01.586", "0.170, 0.130, 0.0", ""),
		dePree("F1d", "17:44:10.3305 -28:22:01.707", "0.180, 0.100, 0.0", ""),
		dePree("F1e", "17:44:10.3261 -28:22:01.929", "0.040, 0.020, 0.0", ""),
		dePree("F1f", "17:44:10.3453 -28:22:01.579", "0.130, 0.090, 0.0", ""),
		dePree("F1g", "17:44:10.3638 -28:22:01.579", "0.150, 0.070, 0.0", ""),
		dePree("F2a", "17:44:10.3468 -28:22:01.287", "0.090, 0.050, 0.0", ""),
		dePree("F2b", "17:44:10.3531 -28:22:01.399", "0.090, 0.060, 0.0", ""),
		dePree("F2c", "17:44:10.3599 -28:22:01.421", "0.150, 0.110, 0.0", ""),
		dePree("F2d", "17:44:10.3590 -28:22:01.303", "0.160, 0.080, 0.0", ""),
		dePree("F3a", "17:44:10.3555 -28:22:02.581", "0.100, 0.060, 0.0", ""),
		dePree("F3b", "17:44:10.3590 -28:22:02.482", "0.240, 0.090, 0.0", ""),
		dePree("F3c", "17:44:10.3619 -28:22:02.112", "0.080, 0.060, 0.0", ""),
		dePree("F3e", "17:44:10.4152 -28:22:02.370", "0.080, 0.040, 0.0", ""),
		dePree("F4a", "17:44:10.3943 -28:22:01.688", "0.130, 0.080, 0.0", ""),
		dePree("F4b", "17:44:10.4040 -28:22:02.070", "0.100, 0.100, 0.0", "not clear"),
		dePree("F4c", "17:44:10.4285 -28:22:01.364", "0.110, 0.080, 0.0", ""),
		dePree("F10.37", "17:44:10.3693 -28:22:03.694", "0.095, 0.062, 0.0", ""),
		dePree("F10,38", "17:44:10.3837 -28:22:04.288", "0.079, 0.065, 0.0", ""),
		dePree("G", "17:44:10.4812 -28:22:00.790", "0.100, 0.111, 0.0", "not clear"),
		dePree("G10.47", "17:44:10.4782 -28:22:00.070", "0.100, 0.100, 0.0", "not clear"),
	}
}

func benson(name, coord, shape string, freq float64, text string) model.RegionRecord {
	return sampleRecord(name, coord, shape, "Benson, 1984", freq, text)
}

func dePree(name, coord, shape, text string) model.RegionRecord {
	return sampleRecord(name, coord, shape, "dePree, 1998", 42.8, text)
}

func sampleRecord(name, coord, shape, ref string, freq float64, text string) model.RegionRecord {
	return model.RegionRecord{
		Name:      name,
		OType:     model.Str("hii"),
		Coord:     coord,
		CType:     "equatorial",
		Epoch:     model.Num(1950),
		EpochKind: model.KindInt,
		SType:     model.ShapeEllipse,
		Shape:     shape,
		SUnit:     "arcsec",
		Ref:       model.Str(ref),
		Freq:      model.Num(freq),
		FUnit:     model.Str("GHz"),
		Text:      model.Str(text),
	}
}
