package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/service"
)

type ExpenseHandler struct{ svc *service.Service }

func NewExpenseHandler(svc *service.Service) *ExpenseHandler { return &ExpenseHandler{svc: svc} }

func (h *ExpenseHandler) List(c *gin.Context) {
	lang := displayLang(c, h.svc.Cache())
	tenantID, scoped := tenantScope(c)
	if scoped {
		c.JSON(http.StatusOK, dto.NewExpenseListResponse(h.svc.Cache().ExpensesByTenant(tenantID), lang))
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseListResponse(h.svc.Cache().Expenses(), lang))
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tenantID, ok := tenantScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("tenantId is required"))
		return
	}
	expense, err := h.svc.CreateExpense(c.Request.Context(), req.Input(tenantID))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewExpenseResponse(expense, displayLang(c, h.svc.Cache())))
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.ownsExpense(c) {
		return
	}
	expense, err := h.svc.UpdateExpense(c.Param("id"), req.Patch())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewExpenseResponse(expense, displayLang(c, h.svc.Cache())))
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if !h.ownsExpense(c) {
		return
	}
	if err := h.svc.DeleteExpense(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) ownsExpense(c *gin.Context) bool {
	for _, e := range h.svc.Cache().Expenses() {
		if e.ID == c.Param("id") {
			if !sameTenant(c, e.TenantID) {
				break
			}
			return true
		}
	}
	c.JSON(http.StatusNotFound, apierror.New("expense not found"))
	return false
}
