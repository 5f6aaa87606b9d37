package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/service"
)

// TenantHandler is the superadmin-only tenant administration surface.
type TenantHandler struct{ svc *service.Service }

func NewTenantHandler(svc *service.Service) *TenantHandler { return &TenantHandler{svc: svc} }

func (h *TenantHandler) List(c *gin.Context) {
	tenants := h.svc.Cache().Tenants()
	out := make([]dto.TenantResponse, len(tenants))
	for i, t := range tenants {
		out[i] = dto.NewTenantResponse(t)
	}
	c.JSON(http.StatusOK, out)
}

func (h *TenantHandler) Get(c *gin.Context) {
	t, ok := h.svc.Cache().TenantByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("tenant not found"))
		return
	}
	c.JSON(http.StatusOK, dto.NewTenantResponse(t))
}

func (h *TenantHandler) Create(c *gin.Context) {
	var req dto.CreateTenantRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.CreateTenant(req.Model())
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewTenantResponse(t))
}

func (h *TenantHandler) Update(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.UpdateTenant(c.Param("id"), req.Patch())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrTenantNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewTenantResponse(t))
}

// Delete starts the cascading delete. The response returns as soon as the
// local view is consistent; the remote removal continues in the
// background.
func (h *TenantHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteTenant(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}
