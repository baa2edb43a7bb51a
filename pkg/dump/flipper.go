package dump

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var blockLineRe = regexp.MustCompile(`^Block (\d+): (.+)$`)

// unknownToken is how Flipper writes a byte it could not read.
const unknownToken = "??"

// ParseFlipper parses a Flipper NFC text capture.
//
// "Block N: XX XX ?? ..." lines become blocks and "#" lines are skipped. Any
// other line with a colon becomes a header entry split on the first colon.
// Tokens that are neither "??" nor a two-digit hex byte are kept as unknown
// slots and counted in Dump.Malformed.
func ParseFlipper(data []byte) (*Dump, error) {
	if !utf8.Valid(data) {
		return nil, &FormatError{Format: FormatFlipper, Err: ErrNotText}
	}

	d := newDump(FormatFlipper)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "Block ") {
			m := blockLineRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			idx, err := strconv.Atoi(m[1])
			if err != nil {
				d.Malformed++
				continue
			}
			block, bad := parseTokens(strings.Fields(m[2]))
			d.Malformed += bad
			d.Blocks[idx] = block
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			d.Header[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FormatError{Format: FormatFlipper, Err: err}
	}
	return d, nil
}

func parseTokens(tokens []string) (Block, int) {
	block := make(Block, 0, len(tokens))
	bad := 0
	for _, tok := range tokens {
		if tok == unknownToken {
			block = append(block, Unknown)
			continue
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil || len(tok) != 2 {
			bad++
			block = append(block, Unknown)
			continue
		}
		block = append(block, Byte(byte(v)))
	}
	return block, bad
}
