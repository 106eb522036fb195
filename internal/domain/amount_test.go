package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_JSON(t *testing.T) {
	data, err := json.Marshal(User{ID: 1, Balance: NewAmount(decimal.RequireFromString("70.25"))})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"btc":70.25`)

	data, err = json.Marshal(User{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"btc":0`)

	var p Purchase
	require.NoError(t, json.Unmarshal([]byte(`{"userId":3,"totalCost":30.5}`), &p))
	assert.True(t, decimal.RequireFromString("30.5").Equal(p.TotalCost.Decimal))

	require.NoError(t, json.Unmarshal([]byte(`{"totalCost":"12"}`), &p))
	assert.True(t, decimal.NewFromInt(12).Equal(p.TotalCost.Decimal))
}
