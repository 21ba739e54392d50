// Package rangeexpr parses the compact time-range expressions used on the
// command line and in saved views:
//
//	-15m                      the last 15 minutes
//	-1h30m                    the last hour and a half
//	2024-01-02..2024-01-03    one absolute day
//	2024-01-02T10:00..now     from a timestamp until now
//	1700000000000..-5m        unix millis to a point 5 minutes ago
//
// A missing ".." upper bound means "until now".
package rangeexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pkg/errors"

	"chartglass/timerange"
)

var (
	exprLexer = lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<DotDot>\.\.)` +
		`|(?P<Now>now)` +
		`|(?P<Stamp>\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?)?)` +
		`|(?P<Duration>-?(\d+(ms|s|m|h|d))+)` +
		`|(?P<Number>\d+)`,
	))

	exprParser = participle.MustBuild(
		&Expression{},
		participle.Lexer(exprLexer),
	)

	durPart = regexp.MustCompile(`(\d+)(ms|s|m|h|d)`)
)

type (
	Expression struct {
		From *stamp `parser:"@@"`
		To   *stamp `parser:"(DotDot @@)?"`
	}

	stamp struct {
		Now    string `parser:"  @Now"`
		Dur    string `parser:"| @Duration"`
		Abs    string `parser:"| @Stamp"`
		Millis string `parser:"| @Number"`
	}
)

// Parse parses the expression text. Evaluate the result with Range.
func Parse(s string) (*Expression, error) {
	e := &Expression{}
	if err := exprParser.ParseString(strings.TrimSpace(s), e); err != nil {
		return nil, errors.Wrapf(err, "could not parse time range %q", s)
	}
	return e, nil
}

// Range evaluates e against the given reference time. Relative stamps are
// anchored at now; an inverted pair comes back in ascending order.
func (e *Expression) Range(now time.Time) (timerange.Range, error) {
	from, err := e.From.resolve(now)
	if err != nil {
		return timerange.Range{}, err
	}
	if e.To == nil {
		return timerange.New(from, now.UnixMilli()), nil
	}
	to, err := e.To.resolve(now)
	if err != nil {
		return timerange.Range{}, err
	}
	return timerange.New(from, to), nil
}

// Eval is Parse followed by Range.
func Eval(s string, now time.Time) (timerange.Range, error) {
	e, err := Parse(s)
	if err != nil {
		return timerange.Range{}, err
	}
	return e.Range(now)
}

func (s *stamp) resolve(now time.Time) (int64, error) {
	switch {
	case s.Now != "":
		return now.UnixMilli(), nil
	case s.Dur != "":
		d, err := parseDuration(s.Dur)
		if err != nil {
			return 0, err
		}
		return now.Add(-d).UnixMilli(), nil
	case s.Abs != "":
		return parseStamp(s.Abs)
	case s.Millis != "":
		v, err := strconv.ParseInt(s.Millis, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad unix millis %q", s.Millis)
		}
		return v, nil
	}
	return 0, errors.New("empty time stamp")
}

var stampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseStamp(s string) (int64, error) {
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, errors.Errorf("bad time stamp %q", s)
}

// parseDuration handles time.ParseDuration units plus "d" for days. The
// leading minus only marks the expression as relative; the returned lookback
// is always positive.
func parseDuration(s string) (time.Duration, error) {
	parts := durPart.FindAllStringSubmatch(s, -1)
	if len(parts) == 0 {
		return 0, errors.Errorf("bad duration %q", s)
	}
	var d time.Duration
	for _, p := range parts {
		n, err := strconv.ParseInt(p[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "bad duration %q", s)
		}
		switch p[2] {
		case "ms":
			d += time.Duration(n) * time.Millisecond
		case "s":
			d += time.Duration(n) * time.Second
		case "m":
			d += time.Duration(n) * time.Minute
		case "h":
			d += time.Duration(n) * time.Hour
		case "d":
			d += time.Duration(n) * 24 * time.Hour
		}
	}
	return d, nil
}
