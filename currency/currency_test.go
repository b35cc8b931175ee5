package currency

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		code     string
		expected string
	}{
		{"dollars", "1200", "USD", "$1,200.00"},
		{"cents", "15.5", "usd", "$15.50"},
		{"rounds to minor units", "0.125", "USD", "$0.13"},
		{"zero decimal currency", "1200", "JPY", "¥1,200"},
		{"unknown currency", "10", "XYZ", "10.00 XYZ"},
		{"beyond minor unit range", "100000000000000000000", "USD", "100000000000000000000.00 USD"},
		{"below minor unit range", "-100000000000000000000", "USD", "-100000000000000000000.00 USD"},
		{"beyond range without minor units", "9300000000000000000", "JPY", "9300000000000000000 JPY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.amount)
			be.Equal(t, tt.expected, Format(d, tt.code))
		})
	}
}

func TestPlain(t *testing.T) {
	be.Equal(t, "1200.00", Plain(decimal.NewFromInt(1200), "INR"))
	be.Equal(t, "1200", Plain(decimal.NewFromInt(1200), "JPY"))
	be.Equal(t, "3.50", Plain(decimal.RequireFromString("3.5"), "nope"))
}

func TestKnown(t *testing.T) {
	be.True(t, Known("INR"))
	be.True(t, Known("eur"))
	be.False(t, Known("XYZ"))
}
