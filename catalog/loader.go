package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/ds9-regions/model"
)

// ErrMalformedCatalog is returned when a persisted catalog cannot be decoded.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Load decodes a JSON catalog: a top-level array of objects mapping field
// names to strings or numbers. Key order within each object is preserved for
// fields the typed record does not know about.
//
// Only the structure is checked. Records missing required fields, or carrying
// a known field with the wrong type, load fine and are rejected later, at
// export time.
func Load(r io.Reader) ([]model.RegionRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: read failed: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("Load: %w: invalid JSON", ErrMalformedCatalog)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("Load: %w: top level is not an array", ErrMalformedCatalog)
	}

	var (
		records []model.RegionRecord
		loadErr error
		index   int
	)
	doc.ForEach(func(_, elem gjson.Result) bool {
		defer func() { index++ }()
		if !elem.IsObject() {
			loadErr = fmt.Errorf("Load: %w: element %d is not an object", ErrMalformedCatalog, index)
			return false
		}
		var row model.Row
		elem.ForEach(func(key, val gjson.Result) bool {
			if val.Type == gjson.Null {
				return true
			}
			v, err := valueFromJSON(val)
			if err != nil {
				loadErr = fmt.Errorf("Load: %w: element %d field %q: %v", ErrMalformedCatalog, index, key.String(), err)
				return false
			}
			row = setField(row, key.String(), v)
			return true
		})
		if loadErr != nil {
			return false
		}
		records = append(records, FromRow(row))
		return true
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return records, nil
}

// LoadYAML decodes a YAML catalog: a sequence of mappings with the same
// field conventions as Load.
func LoadYAML(r io.Reader) ([]model.RegionRecord, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("LoadYAML: %w: %v", ErrMalformedCatalog, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("LoadYAML: %w: top level is not a sequence", ErrMalformedCatalog)
	}

	records := make([]model.RegionRecord, 0, len(root.Content))
	for i, elem := range root.Content {
		if elem.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("LoadYAML: %w: element %d is not a mapping", ErrMalformedCatalog, i)
		}
		var row model.Row
		for j := 0; j+1 < len(elem.Content); j += 2 {
			key, val := elem.Content[j], elem.Content[j+1]
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("LoadYAML: %w: element %d field %q is not a scalar", ErrMalformedCatalog, i, key.Value)
			}
			if val.Tag == "!!null" {
				continue
			}
			v, err := valueFromYAML(val)
			if err != nil {
				return nil, fmt.Errorf("LoadYAML: %w: element %d field %q: %v", ErrMalformedCatalog, i, key.Value, err)
			}
			row = setField(row, key.Value, v)
		}
		records = append(records, FromRow(row))
	}
	return records, nil
}

// LoadFile opens path and decodes it as YAML when the extension is .yaml or
// .yml, and as JSON otherwise.
func LoadFile(path string) ([]model.RegionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}

// FromRow maps an ordered field list onto a typed record. Unknown keys, and
// known keys whose value has the wrong type, are kept as extras so that the
// record is rejected at export time rather than failing the whole catalog.
func FromRow(row model.Row) model.RegionRecord {
	var rec model.RegionRecord
	for _, f := range row {
		if !assign(&rec, f) {
			rec.Extra = append(rec.Extra, f)
		}
	}
	return rec
}

// assign stores f in its typed slot and reports whether it fit.
func assign(rec *model.RegionRecord, f model.Field) bool {
	v := f.Value
	if num, ok := v.AsFloat(); ok {
		switch f.Key {
		case model.KeyEpoch:
			rec.Epoch, rec.EpochKind = &num, v.Kind
			return true
		case model.KeyFreq:
			rec.Freq, rec.FreqKind = &num, v.Kind
			return true
		}
		return false
	}
	if v.Kind != model.KindString {
		return false
	}
	s := v.Str
	switch f.Key {
	case model.KeyName:
		rec.Name = s
	case model.KeyOType:
		rec.OType = &s
	case model.KeyCoord:
		rec.Coord = s
	case model.KeyCType:
		rec.CType = s
	case model.KeySType:
		rec.SType = model.ShapeKind(s)
	case model.KeyShape:
		rec.Shape = s
	case model.KeySUnit:
		rec.SUnit = s
	case model.KeyRef:
		rec.Ref = &s
	case model.KeyFUnit:
		rec.FUnit = &s
	case model.KeyText:
		rec.Text = &s
	default:
		return false
	}
	return true
}

// setField replaces an existing key in place so that rows keep unique keys.
func setField(row model.Row, key string, v model.Value) model.Row {
	for i := range row {
		if row[i].Key == key {
			row[i].Value = v
			return row
		}
	}
	return append(row, model.Field{Key: key, Value: v})
}

func valueFromJSON(val gjson.Result) (model.Value, error) {
	switch val.Type {
	case gjson.String:
		return model.StringValue(val.Str), nil
	case gjson.Number:
		return numberValue(val.Raw)
	default:
		return model.Value{}, fmt.Errorf("unsupported value type %s", val.Type)
	}
}

func valueFromYAML(n *yaml.Node) (model.Value, error) {
	switch n.Tag {
	case "!!int", "!!float":
		return numberValue(n.Value)
	case "!!str", "":
		return model.StringValue(n.Value), nil
	default:
		return model.Value{}, fmt.Errorf("unsupported value type %s", n.Tag)
	}
}

// numberValue keeps the integer/float distinction of the source text, which
// the tabular view uses for default filling.
func numberValue(raw string) (model.Value, error) {
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return model.IntValue(i), nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return model.Value{}, fmt.Errorf("invalid number %q", raw)
	}
	return model.FloatValue(f), nil
}
