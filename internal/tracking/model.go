package tracking

import "time"

// TrackingRequest is a customer request to trace a shipment. Kept in memory;
// see Repository.
type TrackingRequest struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"orderId,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	Note         string    `json:"note,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

const DefaultStatus = "Open"
