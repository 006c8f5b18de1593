package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"10", "10", true},
		{"4.50", "4.5", true},
		{"  7.2  ", "7.2", true},
		{"7.2 kW", "7.2", true},
		{"$45,000.00", "45000", true},
		{"-3", "-3", true},
		{".5", "0.5", true},
		{"1e3", "1000", true},
		{"2.5E+2", "250", true},
		{"1e100", "1e100", true},
		{"1e101", "0", false},
		{"1e2000000000", "0", false},
		{"1e-2000000000", "0", false},
		{"1e99999999999999999999", "0", false},
		{"", "0", false},
		{"abc", "0", false},
		{"kW 7", "0", false},
		{"NaN", "0", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := Parse(c.in)
			assert.Equal(t, c.ok, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "Parse(%q) = %s, want %s", c.in, got, c.want)
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, ParseOrZero("not-a-number").IsZero())
	assert.True(t, ParseOrZero("12.5").Equal(decimal.NewFromFloat(12.5)))
}

func TestNonNegative(t *testing.T) {
	assert.True(t, NonNegative(decimal.NewFromInt(-5000)).IsZero())
	assert.True(t, NonNegative(decimal.NewFromInt(2000)).Equal(decimal.NewFromInt(2000)))
	assert.True(t, NonNegative(decimal.Zero).IsZero())
}

func TestSum(t *testing.T) {
	assert.True(t, Sum().IsZero())
	got := Sum(decimal.NewFromInt(8000), decimal.NewFromInt(13000), decimal.NewFromInt(3500))
	assert.True(t, got.Equal(decimal.NewFromInt(24500)), "got %s", got)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "39.00%", FormatPercentage(Must("0.39")))
	assert.Equal(t, "50.00%", FormatPercentage(Must("0.5")))
}

func TestMustPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { Must("twelve") })
}
