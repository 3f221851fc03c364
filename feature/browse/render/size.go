package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// UnitBase selects SI (1000) or IEC (1024) size units.
type UnitBase string

const (
	UnitDecimal UnitBase = "decimal"
	UnitBinary  UnitBase = "binary"
)

var (
	decimalUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
)

// SizeFormat controls how file sizes are rendered.
type SizeFormat struct {
	Base          UnitBase
	DecimalPlaces int
}

// DefaultSizeFormat renders SI units with two decimal places.
var DefaultSizeFormat = SizeFormat{Base: UnitDecimal, DecimalPlaces: 2}

// ParseUnitBase converts a configuration value into a UnitBase.
func ParseUnitBase(s string) (UnitBase, error) {
	switch b := UnitBase(s); b {
	case UnitDecimal, UnitBinary:
		return b, nil
	default:
		return "", fmt.Errorf("invalid unit base: %q (valid: decimal, binary)", s)
	}
}

// Format renders size with the largest unit not exceeding it.
// Whole bytes print without decimals; trailing zeros are trimmed.
func (f SizeFormat) Format(size int64) string {
	if size < 0 {
		size = 0
	}

	base, units := float64(humanize.KByte), decimalUnits
	if f.Base == UnitBinary {
		base, units = float64(humanize.KiByte), binaryUnits
	}

	value := float64(size)
	exp := 0
	for value >= base && exp < len(units)-1 {
		value /= base
		exp++
	}

	if exp == 0 {
		return strconv.FormatInt(size, 10) + " " + units[0]
	}
	return formatFloat(value, max(f.DecimalPlaces, 0)) + " " + units[exp]
}

// formatFloat rounds to places digits and trims trailing zeros.
func formatFloat(v float64, places int) string {
	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
