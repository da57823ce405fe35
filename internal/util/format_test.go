package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{7, "$0.07"},
		{12050, "$120.50"},
		{1234567, "$12,345.67"},
		{100000000, "$1,000,000.00"},
		{-12050, "-$120.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.cents))
	}
}

func TestCentsToDollarString(t *testing.T) {
	assert.Equal(t, "120.50", CentsToDollarString(12050))
	assert.Equal(t, "0.07", CentsToDollarString(7))
	assert.Equal(t, "15.00", CentsToDollarString(1500))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 14, 2025", FormatDate(d))
	assert.Equal(t, "2025-09-14", FormatDateInput(d))
	assert.Empty(t, FormatDate(time.Time{}))
	assert.Empty(t, FormatDateInput(time.Time{}))
}
