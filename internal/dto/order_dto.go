package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/service"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type IntakeOrderRequest struct {
	FirstName   string          `json:"firstName" binding:"required"`
	LastName    string          `json:"lastName"`
	Phone       string          `json:"phone" binding:"required"`
	ItemCount   int             `json:"itemCount" binding:"required,min=1"`
	ServiceType string          `json:"serviceType" binding:"required"`
	Notes       string          `json:"notes"`
	PickupDate  string          `json:"pickupDate"`
	DateIn      string          `json:"dateIn" binding:"required"`
	Total       decimal.Decimal `json:"total" validate:"min=0"`
	Advance     decimal.Decimal `json:"advance" validate:"min=0"`
}

func (r IntakeOrderRequest) Intake(tenantID string) service.OrderIntake {
	return service.OrderIntake{
		TenantID: tenantID,
		Customer: model.Customer{FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone},
		Details: model.OrderDetails{
			ItemCount:   r.ItemCount,
			ServiceType: r.ServiceType,
			Notes:       r.Notes,
			PickupDate:  r.PickupDate,
			DateIn:      r.DateIn,
		},
		Total:   r.Total,
		Advance: r.Advance,
	}
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=NEW WASHING READY DELIVERED"`
}

type UpdateOrderPaymentRequest struct {
	Total   decimal.Decimal `json:"total" validate:"min=0"`
	Advance decimal.Decimal `json:"advance" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderResponse struct {
	ID        string             `json:"id"`
	TenantID  string             `json:"tenantId"`
	Customer  model.Customer     `json:"customer"`
	Details   model.OrderDetails `json:"details"`
	Payment   model.OrderPayment `json:"payment"`
	Status    model.OrderStatus  `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		TenantID:  o.TenantID,
		Customer:  o.Customer,
		Details:   o.Details,
		Payment:   o.Payment,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func NewOrderListResponse(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}
