package spool

import (
	"fmt"
	"time"

	"github.com/dkoosis/spooltag/pkg/colors"
	"github.com/dkoosis/spooltag/pkg/datecode"
	"github.com/dkoosis/spooltag/pkg/dump"
)

// Scale factors differ between tag generations seen in the wild, so they are
// configuration rather than fixed literals.
const (
	// DefaultSpoolWidthDivisor converts the block 10 raw value to millimetres.
	// Some captures only make sense with 100.
	DefaultSpoolWidthDivisor = 10.0
	// DefaultLengthDivisor converts the block 14 raw value to metres. Use 1000
	// for tags that store millimetres.
	DefaultLengthDivisor = 1.0
)

// Config holds the variant-dependent scale factors.
type Config struct {
	SpoolWidthDivisor float64
	LengthDivisor     float64
}

// DefaultConfig returns the scale factors used by most tags.
func DefaultConfig() Config {
	return Config{
		SpoolWidthDivisor: DefaultSpoolWidthDivisor,
		LengthDivisor:     DefaultLengthDivisor,
	}
}

// Decoder turns a dump into a Tag.
type Decoder struct {
	cfg      Config
	resolver *colors.Resolver
}

// NewDecoder creates a decoder. Zero divisors fall back to the defaults; a nil
// resolver skips color-name lookups.
func NewDecoder(cfg Config, resolver *colors.Resolver) *Decoder {
	if cfg.SpoolWidthDivisor == 0 {
		cfg.SpoolWidthDivisor = DefaultSpoolWidthDivisor
	}
	if cfg.LengthDivisor == 0 {
		cfg.LengthDivisor = DefaultLengthDivisor
	}
	return &Decoder{cfg: cfg, resolver: resolver}
}

// decodeState carries the few values that cross block boundaries: the
// filament type (block 4) and both colors (blocks 5 and 16) feed the color
// lookup and gradient.
type decodeState struct {
	cfg      Config
	resolver *colors.Resolver

	filamentType string
	hasType      bool
	primary      *Color
	secondary    *Color
}

// Decode interprets every recognized block present in d. Blocks outside the
// schema are ignored; absent blocks produce nothing.
func (dec *Decoder) Decode(d *dump.Dump) *Tag {
	tag := &Tag{
		Source:    d.Source,
		Format:    d.Format,
		Raw:       d.Raw,
		Header:    d.Header,
		Malformed: d.Malformed,
	}
	st := dec.newState(d.Blocks)

	for _, idx := range d.Blocks.Indices() {
		spec, ok := blockSpecs[idx]
		if !ok {
			continue
		}
		blk := d.Blocks[idx]
		res := BlockResult{Index: idx, Title: spec.title}
		if len(blk) < spec.need {
			res.Err = &ShortBlockError{Index: idx, Have: len(blk), Need: spec.need}
		} else if fields, err := spec.decode(st, blk); err != nil {
			res.Err = err
		} else {
			res.Fields = fields
		}
		tag.Blocks = append(tag.Blocks, res)
	}
	return tag
}

func (dec *Decoder) newState(blocks dump.BlockMap) *decodeState {
	st := &decodeState{cfg: dec.cfg, resolver: dec.resolver}
	if b4, ok := blocks[4]; ok {
		st.filamentType = asciiBlock(b4)
		st.hasType = true
	}
	if b5, ok := blocks[5]; ok && len(b5) >= primaryOrder.end() {
		c := primaryOrder.read(b5.Bytes())
		st.primary = &c
	}
	if b16, ok := blocks[16]; ok && len(b16) >= secondaryOrder.end() {
		raw := b16.Bytes()
		if le16(raw, 2) > 1 {
			c := secondaryOrder.read(raw)
			st.secondary = &c
		}
	}
	return st
}

// blockSpec describes one block index: its display title, the minimum number
// of slots its numeric fields read, and the decoder.
type blockSpec struct {
	title  string
	need   int
	decode func(st *decodeState, blk dump.Block) ([]Field, error)
}

var blockSpecs = map[int]blockSpec{
	0:  {title: "Tag UID", decode: decodeUID},
	1:  {title: "Tray Info", decode: decodeTrayInfo},
	2:  {title: "Filament Type", decode: decodeFilamentType},
	4:  {title: "Detailed Filament Type", decode: decodeDetailedType},
	5:  {title: "Color & Spool", need: 12, decode: decodePrimary},
	6:  {title: "Drying & Temperature", need: 12, decode: decodeTemperatures},
	8:  {title: "X-Cam & Nozzle", need: 16, decode: decodeNozzle},
	9:  {title: "Tray UID", decode: decodeTrayUID},
	10: {title: "Spool Width", need: 6, decode: decodeSpoolWidth},
	12: {title: "Production DateTime", decode: decodeProductionTime},
	13: {title: "Short Production Date", decode: decodeShortDate},
	14: {title: "Filament Length", need: 6, decode: decodeLength},
	16: {title: "Extra Color Info", need: 8, decode: decodeSecondary},
}

// Schema returns the recognized block indices and their titles.
func Schema() map[int]string {
	out := make(map[int]string, len(blockSpecs))
	for idx, spec := range blockSpecs {
		out[idx] = spec.title
	}
	return out
}

func decodeUID(_ *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	uid := hexUpper(span(b, 0, 4))
	mfr := hexUpper(span(b, 4, 16))
	return []Field{
		{Key: "uid", Label: "UID", Value: uid, Text: uid},
		{Key: "manufacturer_data", Label: "Manufacturer Data", Value: mfr, Text: mfr},
	}, nil
}

func decodeTrayInfo(_ *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	a := ascii(span(b, 0, 8))
	c := ascii(span(b, 8, 16))
	return []Field{
		{Key: "tray_info_a", Label: "Tray Info A", Value: a, Text: a},
		{Key: "tray_info_b", Label: "Tray Info B", Value: c, Text: c},
	}, nil
}

func decodeFilamentType(_ *decodeState, blk dump.Block) ([]Field, error) {
	s := asciiBlock(blk)
	return []Field{{Key: "filament_type", Label: "Filament Type", Value: s, Text: s}}, nil
}

func decodeDetailedType(st *decodeState, _ dump.Block) ([]Field, error) {
	return []Field{{Key: "detailed_filament_type", Label: "Detailed Filament Type", Value: st.filamentType, Text: st.filamentType}}, nil
}

func decodePrimary(st *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	c := primaryOrder.read(b)
	weight := le16(b, 4)
	diameter := le32f(b, 8)

	fields := []Field{{Key: "color_rgba", Label: "Color RGBA", Value: c, Text: c.RGBA()}}
	if info, ok := st.lookupColor(c); ok {
		fields = append(fields,
			Field{Key: "color_name", Label: "Color Name", Value: info.Name, Text: info.Name},
			Field{Key: "color_code", Label: "Color Code", Value: info.Code, Text: info.Code},
		)
	}
	return append(fields,
		Field{Key: "primary_swatch", Label: "Primary Color Swatch", Value: Swatch{Color: c}, Text: "#" + c.RGB()},
		Field{Key: "spool_weight", Label: "Spool Weight", Value: weight, Text: fmt.Sprintf("%d g", weight)},
		Field{Key: "filament_diameter", Label: "Filament Diameter", Value: diameter, Text: fmt.Sprintf("%.2f mm", diameter)},
	), nil
}

// lookupColor resolves the primary color name. The secondary color only takes
// part when block 16 reports more than one color.
func (st *decodeState) lookupColor(primary Color) (colors.Info, bool) {
	if !st.hasType {
		return colors.Info{}, false
	}
	var secondary string
	if st.secondary != nil {
		secondary = st.secondary.RGB()
	}
	return st.resolver.Resolve(st.filamentType, primary.RGB(), secondary)
}

func decodeTemperatures(_ *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	temps := []struct {
		key, label, unit string
		off              int
	}{
		{"drying_temp", "Drying Temp", " °C", 0},
		{"drying_time", "Drying Time", " h", 2},
		{"bed_temp_type", "Bed Temp Type", "", 4},
		{"bed_temp", "Bed Temp", " °C", 6},
		{"hotend_max_temp", "Hotend Max Temp", " °C", 8},
		{"hotend_min_temp", "Hotend Min Temp", " °C", 10},
	}
	fields := make([]Field, 0, len(temps))
	for _, tf := range temps {
		v := le16(b, tf.off)
		fields = append(fields, Field{Key: tf.key, Label: tf.label, Value: v, Text: fmt.Sprintf("%d%s", v, tf.unit)})
	}
	return fields, nil
}

func decodeNozzle(_ *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	cam := hexUpper(b[:12])
	noz := le32f(b, 12)
	return []Field{
		{Key: "xcam_info", Label: "X-Cam Info", Value: cam, Text: cam},
		{Key: "nozzle_diameter", Label: "Nozzle Diameter", Value: noz, Text: fmt.Sprintf("%.2f mm", noz)},
	}, nil
}

// decodeTrayUID omits unknown slots instead of zero-filling them, unlike every
// numeric field.
func decodeTrayUID(_ *decodeState, blk dump.Block) ([]Field, error) {
	s := hexSpaced(blk.KnownBytes())
	return []Field{{Key: "tray_uid", Label: "Tray UID", Value: s, Text: s}}, nil
}

func decodeSpoolWidth(st *decodeState, blk dump.Block) ([]Field, error) {
	mm := float64(le16(blk.Bytes(), 4)) / st.cfg.SpoolWidthDivisor
	return []Field{{Key: "spool_width", Label: "Spool Width", Value: mm, Text: fmt.Sprintf("%.2f mm", mm)}}, nil
}

func decodeProductionTime(_ *decodeState, blk dump.Block) ([]Field, error) {
	raw := asciiBlock(blk)
	fields := []Field{{Key: "production_datetime", Label: "Production DateTime", Value: raw, Text: raw}}
	if t, ok := datecode.ParseProduction(raw); ok {
		fields = append(fields, Field{Key: "production_time", Label: "Parsed DateTime", Value: t, Text: t.Format("2006-01-02 15:04")})
	}
	return fields, nil
}

func decodeShortDate(_ *decodeState, blk dump.Block) ([]Field, error) {
	raw := asciiBlock(blk)
	fields := []Field{{Key: "short_production_date", Label: "Short Production Date", Value: raw, Text: raw}}
	if t, ok := datecode.ParseShort(raw); ok {
		fields = append(fields, Field{Key: "production_date", Label: "Parsed Date", Value: t, Text: formatDate(t)})
	}
	return fields, nil
}

func formatDate(t time.Time) string {
	if t.Hour() != 0 || t.Minute() != 0 {
		return t.Format("2006-01-02 15:04")
	}
	return t.Format("2006-01-02")
}

func decodeLength(st *decodeState, blk dump.Block) ([]Field, error) {
	m := float64(le16(blk.Bytes(), 4)) / st.cfg.LengthDivisor
	return []Field{{Key: "filament_length", Label: "Filament Length", Value: m, Text: fmt.Sprintf("%.2f m", m)}}, nil
}

func decodeSecondary(st *decodeState, blk dump.Block) ([]Field, error) {
	b := blk.Bytes()
	formatID := le16(b, 0)
	count := le16(b, 2)
	fields := []Field{
		{Key: "format_id", Label: "Format ID", Value: formatID, Text: fmt.Sprintf("%04X", formatID)},
		{Key: "color_count", Label: "Color Count", Value: count, Text: fmt.Sprintf("%d", count)},
	}
	if count <= 1 {
		return fields, nil
	}
	c := secondaryOrder.read(b)
	fields = append(fields,
		Field{Key: "second_color_rgba", Label: "Second Color RGBA", Value: c, Text: c.RGBA()},
		Field{Key: "second_swatch", Label: "Second Color Swatch", Value: Swatch{Color: c}, Text: "#" + c.RGB()},
	)
	if st.primary != nil {
		g := Gradient{From: *st.primary, To: c, Steps: GradientSteps}
		fields = append(fields, Field{Key: "color_gradient", Label: "Color Gradient", Value: g, Text: "#" + st.primary.RGB() + " → #" + c.RGB()})
	}
	return fields, nil
}
