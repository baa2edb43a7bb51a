package render

import (
	"encoding/json"
	"math"
	"time"

	"github.com/dkoosis/spooltag/pkg/pattern"
)

// JSON renders patterns as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string            `json:"version"`
	Source  string            `json:"source"`
	Format  string            `json:"format"`
	Header  map[string]string `json:"header"`
	Blocks  []jsonBlock       `json:"blocks"`
}

type jsonBlock struct {
	Index  int         `json:"index"`
	Title  string      `json:"title"`
	Fields []jsonField `json:"fields"`
	Error  string      `json:"error,omitempty"`
}

type jsonField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
	Text  string `json:"text"`
}

// Render formats all patterns as a single JSON document.
func (j *JSON) Render(patterns []pattern.Pattern) string {
	out := jsonOutput{
		Version: "1",
		Header:  map[string]string{},
		Blocks:  []jsonBlock{},
	}

	sum, blocks := split(patterns)
	if sum != nil {
		out.Source = sum.Source
		out.Format = sum.Format
		for _, m := range sum.Metrics {
			if m.Kind != "warning" {
				out.Header[m.Label] = m.Value
			}
		}
	}
	for _, b := range blocks {
		jb := jsonBlock{Index: b.Index, Title: b.Title, Fields: make([]jsonField, 0, len(b.Items)), Error: b.Error}
		for _, item := range b.Items {
			jb.Fields = append(jb.Fields, jsonField{Key: item.Key, Label: item.Label, Value: jsonValue(item.Value), Text: item.Text})
		}
		out.Blocks = append(out.Blocks, jb)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

// jsonValue keeps timestamps zone-free and maps non-finite floats, which
// encoding/json rejects, to null. Garbage float bytes are common on
// partially read tags.
func jsonValue(v any) any {
	switch tv := v.(type) {
	case time.Time:
		return tv.Format("2006-01-02T15:04:05")
	case float32:
		if f := float64(tv); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
	case float64:
		if math.IsNaN(tv) || math.IsInf(tv, 0) {
			return nil
		}
	}
	return v
}
