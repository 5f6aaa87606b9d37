package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state. The progression
// NEW → WASHING → READY → DELIVERED is monotonic by convention only;
// nothing rejects a backwards transition.
type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusWashing   OrderStatus = "WASHING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
)

// Customer is the order's customer sub-record.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// OrderDetails describes the requested service.
type OrderDetails struct {
	ItemCount   int    `json:"itemCount"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes,omitempty"`
	PickupDate  string `json:"pickupDate,omitempty"`
	DateIn      string `json:"dateIn"`
}

// OrderPayment carries the money fields. Remaining is set by the mutator
// that last touched the payment (remaining = total - advance) and is never
// recomputed on read.
type OrderPayment struct {
	Total     decimal.Decimal `json:"total"`
	Advance   decimal.Decimal `json:"advance"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Order is a customer order. Orders are created by the tenant-scoped intake
// flow without authentication and are never hard-deleted except by explicit
// staff action or the tenant cascade.
type Order struct {
	ID        string       `json:"id"`
	TenantID  string       `json:"tenantId"`
	Customer  Customer     `json:"customer"`
	Details   OrderDetails `json:"details"`
	Payment   OrderPayment `json:"payment"`
	Status    OrderStatus  `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
