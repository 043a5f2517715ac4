package utils_test

import (
	"testing"

	"github.com/abcbank/abc_bank_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("abc123!")
	require.NoError(t, err)
	require.NotEqual(t, "abc123!", hash)

	assert.True(t, utils.CheckPasswordHash("abc123!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1000.00", utils.FormatAmount(decimal.RequireFromString("1000")))
	assert.Equal(t, "12.35", utils.FormatAmount(decimal.RequireFromString("12.345")))
	assert.Equal(t, "-50.00", utils.FormatAmount(decimal.NewFromInt(-50)))
	assert.Equal(t, "0.00", utils.FormatAmount(decimal.Zero))
}
