package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/dto"
)

func bindBody(t *testing.T, body string, req interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, bindAndValidate(c, req)
}

func TestBindAndValidateAcceptsValidBody(t *testing.T) {
	body := `{"date":"2026-08-29","product":"Kir kukuni","quantity":2,"amount":"45000"}`
	w, ok := bindBody(t, body, &dto.CreateExpenseRequest{})
	assert.True(t, ok)
	assert.Empty(t, w.Body.String())
}

func TestBindAndValidateRejectsNegativeAmount(t *testing.T) {
	body := `{"date":"2026-08-29","product":"Kir kukuni","amount":-5}`
	w, ok := bindBody(t, body, &dto.CreateExpenseRequest{})
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "min", resp.Fields["Amount"])
}

func TestBindAndValidateRejectsNegativeDailyRate(t *testing.T) {
	body := `{"firstName":"Ali","login":"ali","password":"s3cret","dailyRate":"-100"}`
	w, ok := bindBody(t, body, &dto.CreateStaffRequest{})
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "min", resp.Fields["DailyRate"])
}

func TestBindAndValidateRejectsNegativePayment(t *testing.T) {
	w, ok := bindBody(t, `{"total":100000,"advance":-1}`, &dto.UpdateOrderPaymentRequest{})
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "min", resp.Fields["Advance"])
}

func TestBindAndValidateRejectsBadJSON(t *testing.T) {
	w, ok := bindBody(t, `{"date":`, &dto.CreateExpenseRequest{})
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
