package handler

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/middleware"
	"github.com/AsanTolepov/softwash/internal/model"
	"github.com/AsanTolepov/softwash/internal/store"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// tenantScope resolves which tenant the request operates on. Tenant-bound
// sessions are always confined to their own tenant; superadmin picks one
// with the tenantId query parameter (empty means all tenants).
func tenantScope(c *gin.Context) (string, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		return "", false
	}
	if id, ok := s.TenantID(); ok {
		return id, true
	}
	if id := c.Query("tenantId"); id != "" {
		return id, true
	}
	return "", false
}

// displayLang picks the language used to resolve localized fields in
// responses: the lang query parameter when present, the stored settings
// language otherwise.
func displayLang(c *gin.Context, cache *store.Cache) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return cache.Settings().Language
}

// sameTenant reports whether the session may touch the given record's
// tenant. Superadmin may touch everything.
func sameTenant(c *gin.Context, tenantID string) bool {
	s := middleware.GetSession(c)
	if s == nil {
		return false
	}
	if s.Tier() == model.TierSuperadmin {
		return true
	}
	id, _ := s.TenantID()
	return id == tenantID
}
