package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pricedInput struct {
	Price decimal.Decimal `binding:"dposit"`
}

func TestRegisterValidators_DecimalPositive(t *testing.T) {
	require.NoError(t, RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(pricedInput{Price: decimal.NewFromFloat(9.99)}))
	assert.Error(t, binding.Validator.ValidateStruct(pricedInput{Price: decimal.Zero}))
	assert.Error(t, binding.Validator.ValidateStruct(pricedInput{Price: decimal.NewFromFloat(-1)}))
}
