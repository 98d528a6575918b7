package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "100.00 ETB", Money(decimal.RequireFromString("100"), "ETB"))
	assert.Equal(t, "50,000.00 ETB", Money(decimal.RequireFromString("50000"), "ETB"))
	assert.Equal(t, "1,234,567.89 USD", Money(decimal.RequireFromString("1234567.891"), "USD"))
	assert.Equal(t, "0.00 ETB", Money(decimal.Zero, "ETB"))
	assert.Equal(t, "-1,234.50 ETB", Money(decimal.RequireFromString("-1234.5"), "ETB"))
	assert.Equal(t, "-0.50 ETB", Money(decimal.RequireFromString("-0.5"), "ETB"))
}

func TestMoneyKeepsEveryDigit(t *testing.T) {
	assert.Equal(t, "1,234,567,890,123,456.78 ETB", Money(decimal.RequireFromString("1234567890123456.78"), "ETB"))
	assert.Equal(t, "9,999,999,999,999.99 ETB", Money(decimal.RequireFromString("9999999999999.99"), "ETB"))
}

func TestCount(t *testing.T) {
	tests := map[int64]string{
		0:         "0",
		999:       "999",
		1_000:     "1K",
		45_400:    "45K",
		1_000_000: "1.0M",
		1_250_000: "1.2M",
	}
	for n, want := range tests {
		assert.Equal(t, want, Count(n), n)
	}
}

func TestPercentAndGrouped(t *testing.T) {
	assert.Equal(t, "8.5%", Percent(8.5))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "125,000", Grouped(125000))
	assert.Equal(t, "12", Grouped(12))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pending Approval", Label("pending_approval"))
	assert.Equal(t, "Win-back", Label("win_back"))
	assert.Equal(t, "Frozen (No Outgoing)", Label("frozen"))
	assert.Equal(t, "something_new", Label("something_new"))
}
