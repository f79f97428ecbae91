package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) Money {
	t.Helper()
	m, err := NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMoney_Arithmetic(t *testing.T) {
	a := money(t, "100.00")
	b := money(t, "36.00")

	assert.Equal(t, "136.00", a.Add(b).String())
	assert.Equal(t, "64.00", a.Sub(b).String())
	assert.Equal(t, "300.00", a.MulInt(3).String())
}

func TestMoney_MulRateRoundsToCurrencyPrecision(t *testing.T) {
	// 33.33 * 0.18 = 5.9994, rounds to 6.00
	m := money(t, "33.33")
	rate := decimal.New(18, -2)

	assert.Equal(t, "6.00", m.MulRate(rate).String())
}

func TestMoney_ExactDecimalNoDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, the kind of sum floats get wrong.
	sum := money(t, "0.1").Add(money(t, "0.2"))
	assert.True(t, sum.Equals(money(t, "0.3")))
}

func TestMoney_Comparisons(t *testing.T) {
	a := money(t, "10.00")
	b := money(t, "10.000")
	c := money(t, "-1.50")

	assert.True(t, a.Equals(b))
	assert.Equal(t, 0, a.Cmp(b))
	assert.True(t, c.IsNegative())
	assert.False(t, a.IsNegative())
	assert.True(t, ZeroMoney().IsZero())
	assert.Equal(t, 1, a.Cmp(c))
}

func TestNewMoneyFromString_Invalid(t *testing.T) {
	_, err := NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoney_StringFixedPrecision(t *testing.T) {
	assert.Equal(t, "5.00", money(t, "5").String())
	assert.Equal(t, "5.10", money(t, "5.1").String())
}
