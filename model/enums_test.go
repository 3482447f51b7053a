package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCash.Valid())
	assert.True(t, PaymentDebit.Valid())
	assert.True(t, PaymentEwallet.Valid())

	assert.False(t, PaymentMethod("").Valid())
	assert.False(t, PaymentMethod("credit").Valid())
	assert.False(t, PaymentMethod("Cash").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderProcessing.Valid())
	assert.True(t, OrderCompleted.Valid())
	assert.True(t, OrderCancelled.Valid())

	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("Diproses").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderProcessing, OrderCompleted, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderProcessing, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCompleted, OrderProcessing, false},
		{OrderCancelled, OrderCompleted, false},
		{OrderCancelled, OrderProcessing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestMovementTypeValid(t *testing.T) {
	assert.True(t, MovementIn.Valid())
	assert.True(t, MovementOut.Valid())
	assert.True(t, MovementAdjustment.Valid())

	assert.False(t, MovementType("in").Valid())
	assert.False(t, MovementType("").Valid())
}
