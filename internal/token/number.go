package token

import (
	"strconv"
	"strings"
)

// NumberTag marks whether a Number holds an integer or a decimal payload.
type NumberTag int

const (
	// Integer numbers preserve their tag across same-tag arithmetic.
	Integer NumberTag = iota
	// Decimal numbers result from any mixed Integer/Decimal operation.
	Decimal
)

// Number is a tagged union over int64 and float64. Mixed-tag arithmetic
// promotes to Decimal; same-tag arithmetic preserves the tag.
type Number struct {
	tag  NumberTag
	ival int64
	fval float64
}

// NewInteger wraps an int64 as an Integer-tagged Number.
func NewInteger(v int64) Number { return Number{tag: Integer, ival: v} }

// NewDecimal wraps a float64 as a Decimal-tagged Number.
func NewDecimal(v float64) Number { return Number{tag: Decimal, fval: v} }

// Tag reports whether n is Integer or Decimal.
func (n Number) Tag() NumberTag { return n.tag }

// IsInteger reports whether n holds an Integer.
func (n Number) IsInteger() bool { return n.tag == Integer }

// Int64 returns the raw int64 payload (only meaningful if IsInteger).
func (n Number) Int64() int64 { return n.ival }

// Float64 returns n widened to float64 regardless of tag.
func (n Number) Float64() float64 {
	if n.tag == Integer {
		return float64(n.ival)
	}
	return n.fval
}

// ParseNumber parses a scanned numeric lexeme: no '.' means Integer,
// containing a '.' means Decimal. The scanner guarantees the lexeme
// doesn't end in '.' before calling this.
func ParseNumber(lexeme string) (Number, error) {
	if strings.Contains(lexeme, ".") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Number{}, err
		}
		return NewDecimal(f), nil
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Number{}, err
	}
	return NewInteger(i), nil
}

// IsZero reports whether n is the zero value of its tag.
func (n Number) IsZero() bool {
	if n.tag == Integer {
		return n.ival == 0
	}
	return n.fval == 0
}

func promote(a, b Number) (bool, float64, float64) {
	if a.tag == Integer && b.tag == Integer {
		return false, 0, 0
	}
	return true, a.Float64(), b.Float64()
}

// Add implements mixed-tag Number addition with promotion to Decimal.
func (n Number) Add(o Number) Number {
	if mix, af, bf := promote(n, o); mix {
		return NewDecimal(af + bf)
	}
	return NewInteger(n.ival + o.ival)
}

// Sub implements mixed-tag Number subtraction with promotion to Decimal.
func (n Number) Sub(o Number) Number {
	if mix, af, bf := promote(n, o); mix {
		return NewDecimal(af - bf)
	}
	return NewInteger(n.ival - o.ival)
}

// Mul implements mixed-tag Number multiplication with promotion to Decimal.
func (n Number) Mul(o Number) Number {
	if mix, af, bf := promote(n, o); mix {
		return NewDecimal(af * bf)
	}
	return NewInteger(n.ival * o.ival)
}

// Div implements mixed-tag Number division with promotion to Decimal.
// Callers must check o.IsZero() first; Div does not itself guard it so
// that the caller can attach a Lox-source token to the resulting error.
func (n Number) Div(o Number) Number {
	if mix, af, bf := promote(n, o); mix {
		return NewDecimal(af / bf)
	}
	return NewInteger(n.ival / o.ival)
}

// Neg negates n, preserving its tag.
func (n Number) Neg() Number {
	if n.tag == Integer {
		return NewInteger(-n.ival)
	}
	return NewDecimal(-n.fval)
}

// Eq compares two Numbers by numeric value across tags.
func (n Number) Eq(o Number) bool {
	if n.tag == Integer && o.tag == Integer {
		return n.ival == o.ival
	}
	return n.Float64() == o.Float64()
}

// Less, LessEq, Greater, GreaterEq compare by numeric value across tags.
func (n Number) Less(o Number) bool      { return n.compare(o) < 0 }
func (n Number) LessEq(o Number) bool    { return n.compare(o) <= 0 }
func (n Number) Greater(o Number) bool   { return n.compare(o) > 0 }
func (n Number) GreaterEq(o Number) bool { return n.compare(o) >= 0 }

func (n Number) compare(o Number) int {
	if n.tag == Integer && o.tag == Integer {
		switch {
		case n.ival < o.ival:
			return -1
		case n.ival > o.ival:
			return 1
		default:
			return 0
		}
	}
	af, bf := n.Float64(), o.Float64()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// String renders a Number using the host's natural decimal notation,
// pinned so Decimal(3.0) always prints "3" rather than being left to
// Go's default float formatting verb (which varies by precision choice).
func (n Number) String() string {
	if n.tag == Integer {
		return strconv.FormatInt(n.ival, 10)
	}
	return strconv.FormatFloat(n.fval, 'g', -1, 64)
}
