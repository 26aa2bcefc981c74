package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus validates a client-supplied status against the known set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidStatus
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// Order is the persisted order document. Receipt is set once at creation and
// never mutated; GatewayOrderID correlates the row with the gateway's order
// record during payment verification.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	CustomerName   string          `json:"customerName"`
	OrderDetails   json.RawMessage `json:"orderDetails"`
	Amount         float64         `json:"amount"`
	Currency       string          `json:"currency"`
	Status         OrderStatus     `json:"status"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	Receipt        string          `json:"receipt"`
	GatewayOrderID string          `json:"gatewayOrderId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CreateOrderInput is the /pay request body. Amount is in major currency
// units; OrderDetails is opaque to the backend.
type CreateOrderInput struct {
	Amount       float64         `json:"amount"`
	Currency     string          `json:"currency"`
	CustomerName string          `json:"customerName"`
	OrderDetails json.RawMessage `json:"orderDetails"`
}

// PaymentInitiation echoes the gateway's view of the created order back to
// the client. Amount is in minor units, as returned by the gateway.
type PaymentInitiation struct {
	OrderID      string `json:"orderId"`
	Currency     string `json:"currency"`
	Amount       int64  `json:"amount"`
	OrderReceipt string `json:"orderReceipt"`
}

const DefaultCurrency = "INR"
