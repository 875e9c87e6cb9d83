package textencoding

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/cgminfo/core"
)

var (
	decimalInteger = regexp.MustCompile(`^([+-])?([0-9]+)$`)
	basedInteger   = regexp.MustCompile(`^([+-])?([2-9]|1[0-6])#([0-9A-Fa-f]+)$`)

	explicitPointNumber = regexp.MustCompile(`^[+-]?[0-9]*\.[0-9]*$`)
	scaledRealNumber    = regexp.MustCompile(`^[+-]?[0-9]*(\.[0-9]*)?[Ee][+-]?[0-9]+$`)
)

// ParseInteger parses a decimal ("-42") or based ("16#FF") integer.
// Based digits are case-insensitive. A digit outside the radix, or a value
// that does not fit in 32 bits, is a RangeError; anything else that is not
// an integer is a FormatError.
func ParseInteger(s string) (int, error) {
	if m := decimalInteger.FindStringSubmatch(s); m != nil {
		return toInt32(s, m[1], m[2], 10)
	}

	if m := basedInteger.FindStringSubmatch(s); m != nil {
		radix, _ := strconv.Atoi(m[2])
		for _, d := range strings.ToUpper(m[3]) {
			if digitValue(d) >= radix {
				return 0, &core.RangeError{Kind: "Integer", Input: s, Reason: "digit " + string(d) + " is invalid for base " + m[2]}
			}
		}
		return toInt32(s, m[1], m[3], radix)
	}

	return 0, &core.FormatError{Kind: "Integer", Input: s}
}

func digitValue(d rune) int {
	if d >= '0' && d <= '9' {
		return int(d - '0')
	}
	return int(d-'A') + 10
}

func toInt32(input, sign, digits string, radix int) (int, error) {
	n, err := strconv.ParseInt(sign+digits, radix, 64)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &core.RangeError{Kind: "Integer", Input: input, Reason: "value does not fit in 32 bits"}
	}
	return int(n), nil
}

// ParseReal parses an explicit point ("1.5", ".5", "-3."), scaled
// ("2E3", "1.5e-2") or integer ("7") real.
func ParseReal(s string) (float64, error) {
	if !explicitPointNumber.MatchString(s) && !scaledRealNumber.MatchString(s) && !decimalInteger.MatchString(s) {
		return 0, &core.FormatError{Kind: "Real", Input: s}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, &core.RangeError{Kind: "Real", Input: s, Reason: "value out of range"}
		}
		// "." and "-." match the explicit point form but carry no digits
		return 0, &core.FormatError{Kind: "Real", Input: s}
	}
	return f, nil
}

// Bit widths a clear text precision range can be converted to
var (
	signedWidths     = []int{8, 16, 24, 32}
	colorWidths      = []int{1, 2, 4, 8, 16, 24, 32}
	colorIndexWidths = []int{8, 16, 24, 32}
)

// signedBitPrecision returns the smallest signed width holding [min, max]
func signedBitPrecision(min, max int) int {
	for _, bits := range signedWidths {
		lo := -(int64(1) << (bits - 1))
		hi := int64(1)<<(bits-1) - 1
		if int64(min) >= lo && int64(max) <= hi {
			return bits
		}
	}
	return 32
}

// unsignedBitPrecision returns the smallest width from widths holding max
func unsignedBitPrecision(max int, widths []int) int {
	for _, bits := range widths {
		if int64(max) <= int64(1)<<bits-1 {
			return bits
		}
	}
	return 32
}

// realPrecisionFor picks single precision floating point when the declared
// range fits a float32 and double precision otherwise.
func realPrecisionFor(min, max float64) core.RealPrecision {
	if min >= -math.MaxFloat32 && max <= math.MaxFloat32 {
		return core.Float32Precision
	}
	return core.Float64Precision
}
