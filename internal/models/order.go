package models

import "time"

// OrderStatus is the closed set of states an order can be in.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusCancelled OrderStatus = "Cancelled"
)

// statusTransitions maps a target status to the statuses allowed to move
// into it. Shipped and Cancelled are terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusShipped:   {StatusPending},
	StatusCancelled: {StatusPending},
}

// ParseOrderStatus validates a caller-supplied status string against the enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusShipped, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// TransitionSources returns the statuses an order may hold for a move to
// next to be legal. Empty means nothing may transition to next.
func TransitionSources(next OrderStatus) []OrderStatus {
	return statusTransitions[next]
}

// ShippingAddress is the structured form of the address blob stored on an
// order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Order is the persisted order record. Items and ShippingAddress hold
// JSON-encoded text exactly as submitted at checkout; they are decoded on
// demand and malformed blobs must degrade, not crash (see orders.ItemsSummary).
type Order struct {
	ID              int64       `bson:"_id" json:"id"`
	CustomerName    string      `bson:"customerName" json:"customer_name"`
	CustomerEmail   string      `bson:"customerEmail" json:"customer_email"`
	ShippingAddress string      `bson:"shippingAddress,omitempty" json:"shipping_address,omitempty"`
	TotalAmount     float64     `bson:"totalAmount" json:"total_amount"`
	Items           string      `bson:"items" json:"items"`
	Status          OrderStatus `bson:"status" json:"status"`
	PaymentStatus   string      `bson:"paymentStatus" json:"payment_status"`
	PaymentMethod   string      `bson:"paymentMethod" json:"payment_method"`
	TransactionID   string      `bson:"transactionId,omitempty" json:"transaction_id,omitempty"`
	CreatedAt       time.Time   `bson:"createdAt" json:"created_at"`
}
