package dump

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// proxmarkDoc is the subset of a Proxmark3 JSON dump we read.
type proxmarkDoc struct {
	Card   map[string]json.RawMessage `json:"Card"`
	Blocks map[string]json.RawMessage `json:"blocks"`
}

// ParseProxmark parses a Proxmark capture, trying JSON first and falling back
// to the raw 16-byte-chunk binary layout when the input is not a JSON object.
func ParseProxmark(data []byte) *Dump {
	d, err := ParseProxmarkJSON(data)
	if err != nil {
		return ParseRaw(data)
	}
	return d
}

// ParseProxmarkJSON parses the JSON dump layout. Block entries with a
// non-numeric index or a bad hex string are skipped and counted in
// Dump.Malformed; only a document-level failure returns an error.
func ParseProxmarkJSON(data []byte) (*Dump, error) {
	if !utf8.Valid(data) {
		return nil, &FormatError{Format: FormatProxmark, Err: ErrNotJSON}
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &FormatError{Format: FormatProxmark, Err: ErrNotJSON}
	}
	var doc proxmarkDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Format: FormatProxmark, Err: fmt.Errorf("%w: %v", ErrNotJSON, err)}
	}

	d := newDump(FormatProxmark)
	if uid, ok := cardString(doc.Card, "UID"); ok {
		d.Header["UID"] = joinHexPairs(uid)
	}
	for _, key := range []string{"ATQA", "SAK"} {
		if v, ok := cardString(doc.Card, key); ok {
			d.Header[key] = v
		}
	}

	for key, value := range doc.Blocks {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			d.Malformed++
			continue
		}
		var hexstr string
		if err := json.Unmarshal(value, &hexstr); err != nil {
			d.Malformed++
			continue
		}
		raw, err := hex.DecodeString(hexstr)
		if err != nil {
			d.Malformed++
			continue
		}
		d.Blocks[idx] = BlockOf(raw)
	}
	return d, nil
}

// cardString returns a Card field verbatim. Non-string JSON values are kept
// as their literal text.
func cardString(card map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := card[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}

// joinHexPairs turns "AABBCCDD" into "AA:BB:CC:DD".
func joinHexPairs(s string) string {
	pairs := make([]string, 0, (len(s)+1)/2)
	for i := 0; i < len(s); i += 2 {
		end := i + 2
		if end > len(s) {
			end = len(s)
		}
		pairs = append(pairs, s[i:end])
	}
	return strings.Join(pairs, ":")
}

// ParseRaw splits data into consecutive BlockSize chunks indexed from 0.
// A trailing partial chunk is discarded. Raw dumps carry no header.
func ParseRaw(data []byte) *Dump {
	d := newDump(FormatProxmark)
	d.Raw = true
	for i := 0; i+BlockSize <= len(data); i += BlockSize {
		d.Blocks[i/BlockSize] = BlockOf(data[i : i+BlockSize])
	}
	return d
}
