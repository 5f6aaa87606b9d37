package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/service"
)

type StaffHandler struct{ svc *service.Service }

func NewStaffHandler(svc *service.Service) *StaffHandler { return &StaffHandler{svc: svc} }

func (h *StaffHandler) List(c *gin.Context) {
	lang := displayLang(c, h.svc.Cache())
	tenantID, scoped := tenantScope(c)
	if scoped {
		c.JSON(http.StatusOK, dto.NewStaffListResponse(h.svc.Cache().StaffByTenant(tenantID), lang))
		return
	}
	c.JSON(http.StatusOK, dto.NewStaffListResponse(h.svc.Cache().Staff(), lang))
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	tenantID, ok := tenantScope(c)
	if !ok {
		c.JSON(http.StatusBadRequest, apierror.New("tenantId is required"))
		return
	}
	staff, err := h.svc.CreateStaff(c.Request.Context(), req.Input(tenantID))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewStaffResponse(staff, displayLang(c, h.svc.Cache())))
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.ownsStaff(c) {
		return
	}
	staff, err := h.svc.UpdateStaff(c.Param("id"), req.Patch())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewStaffResponse(staff, displayLang(c, h.svc.Cache())))
}

// Attendance marks or unmarks one date in the employee's attendance list.
func (h *StaffHandler) Attendance(c *gin.Context) {
	var req dto.AttendanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.ownsStaff(c) {
		return
	}
	staff, err := h.svc.SetAttendance(c.Param("id"), req.Date, req.Present)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewStaffResponse(staff, displayLang(c, h.svc.Cache())))
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if !h.ownsStaff(c) {
		return
	}
	if err := h.svc.DeleteStaff(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StaffHandler) ownsStaff(c *gin.Context) bool {
	staff, ok := h.svc.Cache().StaffByID(c.Param("id"))
	if !ok || !sameTenant(c, staff.TenantID) {
		c.JSON(http.StatusNotFound, apierror.New("staff member not found"))
		return false
	}
	return true
}
