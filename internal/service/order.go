package service

import (
	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/model"
)

// OrderIntake is the shape the intake flow submits. No authentication is
// required; the flow is tenant-scoped by URL.
type OrderIntake struct {
	TenantID string
	Customer model.Customer
	Details  model.OrderDetails
	Total    decimal.Decimal
	Advance  decimal.Decimal
}

// CreateOrder validates the intake, computes the remaining amount
// (remaining = total - advance, set here and never recomputed on read)
// and stores the order with status NEW.
func (s *Service) CreateOrder(in OrderIntake) (model.Order, error) {
	if _, ok := s.cache.TenantByID(in.TenantID); !ok {
		return model.Order{}, ErrTenantNotFound
	}
	if in.Customer.FirstName == "" || in.Customer.Phone == "" {
		return model.Order{}, ErrCustomerRequired
	}
	if in.Details.ItemCount <= 0 {
		return model.Order{}, ErrItemCountInvalid
	}
	if in.Advance.GreaterThan(in.Total) {
		return model.Order{}, ErrAdvanceTooLarge
	}

	order := model.Order{
		TenantID: in.TenantID,
		Customer: in.Customer,
		Details:  in.Details,
		Payment: model.OrderPayment{
			Total:     in.Total,
			Advance:   in.Advance,
			Remaining: in.Total.Sub(in.Advance),
		},
		Status: model.StatusNew,
	}
	return s.cache.AddOrder(order), nil
}

// UpdateOrderStatus moves the order to the given status. The progression
// is monotonic by convention only; no transition is rejected.
func (s *Service) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, error) {
	updated, ok := s.cache.UpdateOrder(id, model.OrderPatch{Status: &status})
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// UpdateOrderPayment sets new amounts and re-derives remaining. The whole
// payment sub-record replaces at once.
func (s *Service) UpdateOrderPayment(id string, total, advance decimal.Decimal) (model.Order, error) {
	if advance.GreaterThan(total) {
		return model.Order{}, ErrAdvanceTooLarge
	}
	payment := model.OrderPayment{
		Total:     total,
		Advance:   advance,
		Remaining: total.Sub(advance),
	}
	updated, ok := s.cache.UpdateOrder(id, model.OrderPatch{Payment: &payment})
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// UpdateOrder applies a general patch (customer/details corrections).
func (s *Service) UpdateOrder(id string, p model.OrderPatch) (model.Order, error) {
	updated, ok := s.cache.UpdateOrder(id, p)
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// DeleteOrder removes a single order.
func (s *Service) DeleteOrder(id string) error {
	if _, ok := s.cache.OrderByID(id); !ok {
		return ErrOrderNotFound
	}
	s.cache.DeleteOrder(id)
	return nil
}
