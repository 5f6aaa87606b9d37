package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/service"
)

type OrderHandler struct{ svc *service.Service }

func NewOrderHandler(svc *service.Service) *OrderHandler { return &OrderHandler{svc: svc} }

// Intake accepts a walk-in order on the public, unauthenticated surface.
// The tenant is named in the URL, not inferred from a session.
func (h *OrderHandler) Intake(c *gin.Context) {
	var req dto.IntakeOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	order, err := h.svc.CreateOrder(req.Intake(c.Param("tenantId")))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrTenantNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(order))
}

// List returns the session tenant's orders, newest first. Superadmin sees
// all tenants unless tenantId narrows the scope.
func (h *OrderHandler) List(c *gin.Context) {
	tenantID, scoped := tenantScope(c)
	var out []dto.OrderResponse
	if scoped {
		out = dto.NewOrderListResponse(h.svc.Cache().OrdersByTenant(tenantID))
	} else {
		out = dto.NewOrderListResponse(h.svc.Cache().Orders())
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, ok := h.svc.Cache().OrderByID(c.Param("id"))
	if !ok || !sameTenant(c, order.TenantID) {
		c.JSON(http.StatusNotFound, apierror.New("order not found"))
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.ownsOrder(c) {
		return
	}
	order, err := h.svc.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	var req dto.UpdateOrderPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.ownsOrder(c) {
		return
	}
	order, err := h.svc.UpdateOrderPayment(c.Param("id"), req.Total, req.Advance)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if !h.ownsOrder(c) {
		return
	}
	if err := h.svc.DeleteOrder(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ownsOrder rejects cross-tenant access with 404 so foreign ids are
// indistinguishable from absent ones.
func (h *OrderHandler) ownsOrder(c *gin.Context) bool {
	order, ok := h.svc.Cache().OrderByID(c.Param("id"))
	if !ok || !sameTenant(c, order.TenantID) {
		c.JSON(http.StatusNotFound, apierror.New("order not found"))
		return false
	}
	return true
}
