package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/service"
)

type SettingsHandler struct{ svc *service.Service }

func NewSettingsHandler(svc *service.Service) *SettingsHandler { return &SettingsHandler{svc: svc} }

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cache().Settings())
}

// Update merge-patches the preferences document; absent fields stay
// unchanged.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateSettings(req.Patch()))
}
