// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package ivtext parses the textual form of intervals, as produced by
// interval.Interval's String method.
package ivtext

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/biogo/intervals/interval"
)

// ErrSyntax is returned when text is not a valid interval.
var ErrSyntax = errors.New("ivtext: invalid syntax")

// A ValueFunc parses the text of a single interval end.
type ValueFunc func(string) (interval.Comparable, error)

// Parse parses s in the form "[lower,higher)" where the opening bracket is
// '[' or '(' and the closing bracket is ']' or ')'. An empty end is unbounded.
// An interval with equal exclusive ends, such as "(0,0)", is parsed as the
// empty interval. value is used to parse each non-empty end.
func Parse(s string, value ValueFunc) (*interval.Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return nil, errors.Wrapf(ErrSyntax, "%q: too short", s)
	}

	var loInc, hiInc bool
	switch s[0] {
	case '[':
		loInc = true
	case '(':
	default:
		return nil, errors.Wrapf(ErrSyntax, "%q: bad opening bracket %q", s, s[0])
	}
	switch s[len(s)-1] {
	case ']':
		hiInc = true
	case ')':
	default:
		return nil, errors.Wrapf(ErrSyntax, "%q: bad closing bracket %q", s, s[len(s)-1])
	}

	lo, hi, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok || strings.Contains(hi, ",") {
		return nil, errors.Wrapf(ErrSyntax, "%q: want exactly one comma", s)
	}
	lower, err := bound(strings.TrimSpace(lo), loInc, value)
	if err != nil {
		return nil, errors.Wrapf(err, "%q: lower", s)
	}
	higher, err := bound(strings.TrimSpace(hi), hiInc, value)
	if err != nil {
		return nil, errors.Wrapf(err, "%q: higher", s)
	}

	if !loInc && !hiInc && !lower.IsUnbounded() && !higher.IsUnbounded() &&
		lower.Value().Compare(higher.Value()) == 0 {
		return interval.EmptyOf(lower.Value()), nil
	}
	iv, err := interval.New(lower, higher)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", s)
	}
	return iv, nil
}

func bound(text string, inclusive bool, value ValueFunc) (interval.Bound, error) {
	if text == "" {
		return interval.Unbounded(), nil
	}
	v, err := value(text)
	if err != nil {
		return interval.Bound{}, errors.Wrapf(ErrSyntax, "value %q: %v", text, err)
	}
	if inclusive {
		return interval.Closed(v), nil
	}
	return interval.Open(v), nil
}

// ParseFloat parses s with interval.Float ends.
func ParseFloat(s string) (*interval.Interval, error) { return Parse(s, floatValue) }

// ParseFixed parses s with interval.Fixed ends formatted to prec decimal
// places.
func ParseFixed(s string, prec int) (*interval.Interval, error) {
	return Parse(s, func(text string) (interval.Comparable, error) {
		v, err := floatValue(text)
		if err != nil {
			return nil, err
		}
		return interval.Fixed{V: float64(v.(interval.Float)), Prec: prec}, nil
	})
}

// ParseInt parses s with interval.Int ends.
func ParseInt(s string) (*interval.Interval, error) { return Parse(s, intValue) }

func floatValue(s string) (interval.Comparable, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) {
		return nil, errors.New("NaN is not ordered")
	}
	return interval.Float(f), nil
}

func intValue(s string) (interval.Comparable, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return interval.Int(i), nil
}
