package render_test

import (
	"testing"

	"bucket-browser/feature/browse/render"

	"github.com/stretchr/testify/assert"
)

func TestSizeFormat_Format(t *testing.T) {
	decimal := render.DefaultSizeFormat
	binary := render.SizeFormat{Base: render.UnitBinary, DecimalPlaces: 2}

	tests := []struct {
		name   string
		format render.SizeFormat
		size   int64
		want   string
	}{
		{"Zero", decimal, 0, "0 B"},
		{"Bytes", decimal, 999, "999 B"},
		{"Exactly One KB", decimal, 1000, "1 KB"},
		{"Rounded KB", decimal, 1536, "1.54 KB"},
		{"MB", decimal, 2_500_000, "2.5 MB"},
		{"GB", decimal, 3_210_000_000, "3.21 GB"},
		{"Binary Bytes", binary, 1023, "1023 B"},
		{"Binary KiB", binary, 1536, "1.5 KiB"},
		{"Binary MiB", binary, 5 * 1024 * 1024, "5 MiB"},
		{"No Decimals", render.SizeFormat{Base: render.UnitDecimal}, 1536, "2 KB"},
		{"Negative Places", render.SizeFormat{Base: render.UnitDecimal, DecimalPlaces: -1}, 1536, "2 KB"},
		{"Three Places", render.SizeFormat{Base: render.UnitDecimal, DecimalPlaces: 3}, 1536, "1.536 KB"},
		{"Negative Size", decimal, -5, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Format(tt.size))
		})
	}
}

func TestParseUnitBase(t *testing.T) {
	b, err := render.ParseUnitBase("binary")
	assert.NoError(t, err)
	assert.Equal(t, render.UnitBinary, b)

	b, err = render.ParseUnitBase("decimal")
	assert.NoError(t, err)
	assert.Equal(t, render.UnitDecimal, b)

	_, err = render.ParseUnitBase("metric")
	assert.Error(t, err)
}
