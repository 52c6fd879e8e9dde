package investmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSharesOwned(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		totalValue string
		want       string
	}{
		{"reference scenario", "8000", "500000", "1.6"},
		{"whole percent", "50000", "500000", "10"},
		{"rounds to percent scale", "1000", "300000", "0.3333"},
		{"tiny amount", "1", "500000", "0.0002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SharesOwned(d(tt.amount), d(tt.totalValue))
			assert.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got.String())
		})
	}
}

func TestSharesOwnedInvalidTotalValue(t *testing.T) {
	_, err := SharesOwned(d("8000"), decimal.Zero)
	assert.Error(t, err)

	_, err = SharesOwned(d("8000"), d("-1"))
	assert.Error(t, err)
}

func TestOwnershipPercentage(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		fundingTarget string
		want          string
	}{
		{"reference scenario", "8000", "200000", "4"},
		{"full round", "200000", "200000", "100"},
		{"rounds to percent scale", "1000", "30000", "3.3333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OwnershipPercentage(d(tt.amount), d(tt.fundingTarget))
			assert.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got.String())
		})
	}
}

func TestOwnershipPercentageInvalidTarget(t *testing.T) {
	_, err := OwnershipPercentage(d("8000"), decimal.Zero)
	assert.Error(t, err)
}

// The computations must be pure: same inputs, same outputs, independent of
// call order.
func TestMathIsPure(t *testing.T) {
	amount := d("8000")
	totalValue := d("500000")

	first, err := SharesOwned(amount, totalValue)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := SharesOwned(amount, totalValue)
		assert.NoError(t, err)
		assert.True(t, first.Equal(again))
	}

	// Inputs are not mutated.
	assert.True(t, amount.Equal(d("8000")))
	assert.True(t, totalValue.Equal(d("500000")))
}

func TestFundingPercentage(t *testing.T) {
	assert.True(t, d("29").Equal(FundingPercentage(d("58000"), d("200000"))))
	assert.True(t, d("100").Equal(FundingPercentage(d("200000"), d("200000"))))
	assert.True(t, decimal.Zero.Equal(FundingPercentage(d("100"), decimal.Zero)))
}
