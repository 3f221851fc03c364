package browse

import (
	"fmt"

	"bucket-browser/feature/browse/render"
)

// Config holds the listing display options.
type Config struct {
	// UnitBase selects decimal (KB = 1000 B) or binary (KiB = 1024 B) sizes.
	UnitBase string `mapstructure:"unit_base" default:"decimal"`
	// DecimalPlaces is the number of digits kept after the decimal point.
	DecimalPlaces int `mapstructure:"decimal_places" default:"2"`
}

// Validate checks the display options.
func (c Config) Validate() error {
	_, err := c.SizeFormat()
	return err
}

// SizeFormat converts the options into a render.SizeFormat.
func (c Config) SizeFormat() (render.SizeFormat, error) {
	base, err := render.ParseUnitBase(c.UnitBase)
	if err != nil {
		return render.SizeFormat{}, err
	}
	if c.DecimalPlaces < 0 {
		return render.SizeFormat{}, fmt.Errorf("invalid decimal places: %d (must be >= 0)", c.DecimalPlaces)
	}
	return render.SizeFormat{Base: base, DecimalPlaces: c.DecimalPlaces}, nil
}
