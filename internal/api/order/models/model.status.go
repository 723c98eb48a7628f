package models

// OrderStatus is the closed set of order lifecycle states. Values are
// stored as strings so documents stay readable in the database.
type OrderStatus string

const (
	StatusWaitingPayment OrderStatus = "WAITING_PAYMENT"
	StatusPaymentFailed  OrderStatus = "PAYMENT_FAILED"
	StatusCooking        OrderStatus = "COOKING"
	StatusInTransit      OrderStatus = "IN_TRANSIT"
	StatusWaitingPickup  OrderStatus = "WAITING_PICKUP"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusIssue          OrderStatus = "ISSUE"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusRefunded       OrderStatus = "REFUNDED"
)

// AllStatuses lists every valid status.
var AllStatuses = []OrderStatus{
	StatusWaitingPayment,
	StatusPaymentFailed,
	StatusCooking,
	StatusInTransit,
	StatusWaitingPickup,
	StatusCompleted,
	StatusIssue,
	StatusCancelled,
	StatusRefunded,
}

// statusTransitions is the legal transition table. COMPLETED is reachable
// only from IN_TRANSIT and WAITING_PICKUP; CANCELLED and REFUNDED are dead
// ends; a completed order can still be refunded.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusWaitingPayment: {StatusPaymentFailed, StatusCooking, StatusCancelled},
	StatusPaymentFailed:  {StatusWaitingPayment, StatusCooking, StatusCancelled},
	StatusCooking:        {StatusInTransit, StatusWaitingPickup, StatusIssue, StatusCancelled},
	StatusInTransit:      {StatusCompleted, StatusIssue},
	StatusWaitingPickup:  {StatusCompleted, StatusIssue},
	StatusIssue:          {StatusCooking, StatusInTransit, StatusWaitingPickup, StatusRefunded, StatusCancelled},
	StatusCompleted:      {StatusRefunded},
	StatusCancelled:      {},
	StatusRefunded:       {},
}

// IsValid reports whether s is one of the defined statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal reports whether s ends the active life of an order. Terminal
// orders are excluded from active-order checks.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TerminalStatuses returns the statuses excluded from active-order queries.
func TerminalStatuses() []OrderStatus {
	return []OrderStatus{StatusCompleted, StatusCancelled, StatusRefunded}
}

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// paymentStatusNames maps payment statuses to the Spanish labels stored in
// payment logs.
var paymentStatusNames = map[PaymentStatus]string{
	PaymentPending:  "Pago pendiente",
	PaymentPaid:     "Pago confirmado",
	PaymentFailed:   "Pago fallido",
	PaymentRefunded: "Pago reembolsado",
}

// Name returns the display label for a payment status.
func (p PaymentStatus) Name() string {
	if name, ok := paymentStatusNames[p]; ok {
		return name
	}
	return string(p)
}
