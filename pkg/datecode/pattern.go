// Package datecode parses the ASCII production dates written on spool tags.
//
// Layouts use strftime directives (%Y %y %m %d %H %M). A Pattern must match
// the whole input, and dates that do not exist on the calendar never parse.
package datecode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type directive byte

// Per-directive digit rules, matching strptime's accepted forms.
var directiveExpr = map[directive]string{
	'Y': `\d{4}`,
	'y': `\d{2}`,
	'm': `1[0-2]|0[1-9]|[1-9]`,
	'd': `3[01]|[12]\d|0[1-9]|[1-9]`,
	'H': `2[0-3]|[01]\d|\d`,
	'M': `[0-5]\d|\d`,
}

// Pattern is a compiled date layout.
type Pattern struct {
	layout string
	re     *regexp.Regexp
	fields []directive
}

// Compile builds a Pattern from a strftime-style layout.
func Compile(layout string) (*Pattern, error) {
	var (
		expr   strings.Builder
		fields []directive
		seen   = make(map[directive]bool)
	)
	expr.WriteString("^")
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			expr.WriteString(regexp.QuoteMeta(string(c)))
			continue
		}
		i++
		if i >= len(layout) {
			return nil, fmt.Errorf("layout %q: trailing %%", layout)
		}
		d := directive(layout[i])
		if d == '%' {
			expr.WriteString("%")
			continue
		}
		sub, ok := directiveExpr[d]
		if !ok {
			return nil, fmt.Errorf("layout %q: unsupported directive %%%c", layout, d)
		}
		if seen[d] {
			return nil, fmt.Errorf("layout %q: directive %%%c repeated", layout, d)
		}
		seen[d] = true
		fields = append(fields, d)
		expr.WriteString("(" + sub + ")")
	}
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", layout, err)
	}
	return &Pattern{layout: layout, re: re, fields: fields}, nil
}

// MustCompile is like Compile but panics on a bad layout.
func MustCompile(layout string) *Pattern {
	p, err := Compile(layout)
	if err != nil {
		panic(err)
	}
	return p
}

// Layout returns the source layout string.
func (p *Pattern) Layout() string { return p.layout }

// Parse returns the UTC time described by s, or false when s does not match
// the layout or names a day that does not exist.
func (p *Pattern) Parse(s string) (time.Time, bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, month, day := 1900, 1, 1
	var hour, minute int
	for i, d := range p.fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Time{}, false
		}
		switch d {
		case 'Y':
			year = n
		case 'y':
			year = expandYear(n)
		case 'm':
			month = n
		case 'd':
			day = n
		case 'H':
			hour = n
		case 'M':
			minute = n
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// expandYear applies the POSIX two-digit year pivot: 69-99 are 19xx, 00-68 are 20xx.
func expandYear(yy int) int {
	if yy >= 69 {
		return 1900 + yy
	}
	return 2000 + yy
}

// Chain is an ordered list of candidate patterns.
type Chain []*Pattern

// Parse returns the result of the first pattern that accepts s.
func (c Chain) Parse(s string) (time.Time, bool) {
	for _, p := range c {
		if t, ok := p.Parse(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
