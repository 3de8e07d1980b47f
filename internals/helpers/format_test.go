package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPeso(t *testing.T) {
	assert.Equal(t, "₱1,234.50", FormatPeso(1234.5))
	assert.Equal(t, "₱0.00", FormatPeso(0))
	assert.Equal(t, "₱3,500.00", FormatPeso(3500))
	assert.Equal(t, "₱999.99", FormatPeso(999.99))
	assert.Equal(t, "₱1,000,000.00", FormatPeso(1000000))
	assert.Equal(t, "-₱250.75", FormatPeso(-250.75))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 7, 2025", FormatDate(d))
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2025, time.March, 7, 15, 30, 45, 12, time.UTC)
	got := StartOfDay(d)
	assert.Equal(t, time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), got)
}
