// Package dto defines the order request payloads. Prices never appear in
// the inputs: the server recomputes every amount from the menu.
package dto

// OrderItemInput is one requested line. Only the burger reference, quantity
// and note are accepted from the client.
type OrderItemInput struct {
	BurgerID string `json:"burgerId" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note,omitempty" validate:"omitempty,no_xss"`
}

// OrderCreateInput is the storefront checkout payload.
type OrderCreateInput struct {
	CustomerPhone string           `json:"customerPhone" validate:"required,phone_number"`
	CustomerName  string           `json:"customerName,omitempty" validate:"omitempty,no_xss"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderUpdateInput is the back-office edit payload for non-lifecycle fields.
// Status and payment changes go through their dedicated endpoints.
type OrderUpdateInput struct {
	Priority          string `json:"priority,omitempty" validate:"omitempty,oneof=normal high urgent"`
	InternalNotes     string `json:"internalNotes,omitempty" validate:"omitempty,no_xss"`
	EstimatedPrepTime *int64 `json:"estimatedPrepTime,omitempty" validate:"omitempty,gte=0"`
}

// OrderStatusUpdateInput moves an order through the lifecycle.
type OrderStatusUpdateInput struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// OrderPaymentUpdateInput records a verified transfer.
type OrderPaymentUpdateInput struct {
	OrderID           string `json:"orderId" validate:"required"`
	BankAccount       string `json:"bankAccount" validate:"required,no_xss"`
	TransferReference string `json:"transferReference" validate:"required,no_xss"`
	Comment           string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}

// OrderPaymentFailedInput rejects a transfer that could not be verified.
type OrderPaymentFailedInput struct {
	OrderID string `json:"orderId" validate:"required"`
	Comment string `json:"comment,omitempty" validate:"omitempty,no_xss"`
}
