package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{50000, "50.0k"},
		{999999, "1000.0k"},
		{1000000, "1.0M"},
		{4000000, "4.0M"},
		{999999999, "1000.0M"},
		{1000000000, "1.0Mrd"},
		{2500000000, "2.5Mrd"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compact(tt.input))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5.0%", Percent(0.05))
	assert.Equal(t, "8.0%", Percent(0.08))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "12.3%", Percent(0.1234))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "45 €", Currency(45))
	assert.Equal(t, "120 €", Currency(120))
	assert.Equal(t, "1000000 €", Currency(1000000))
	assert.Equal(t, "3 €", Currency(2.6))
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "999", Grouped(999))
	assert.Equal(t, "1,000", Grouped(1000))
	assert.Equal(t, "208,333,333", Grouped(208333333))
	assert.Equal(t, "-1,500", Grouped(-1500))
}

func TestEuro(t *testing.T) {
	assert.Equal(t, "0.40 €", Euro(0.4))
	assert.Equal(t, "833,333.33 €", Euro(833333.332))
}

func TestScore(t *testing.T) {
	assert.Equal(t, "11.61", Score(11.605000001))
	assert.Equal(t, "2.70", Score(2.7))
}
