package model

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentDebit   PaymentMethod = "debit"
	PaymentEwallet PaymentMethod = "ewallet"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentDebit, PaymentEwallet:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderCompleted  OrderStatus = "Completed"
	OrderCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo allows Processing -> Completed and Processing -> Cancelled
// only. Completed and Cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderProcessing {
		return false
	}
	return next == OrderCompleted || next == OrderCancelled
}

type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

func (m MovementType) Valid() bool {
	switch m {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}
