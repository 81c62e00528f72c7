package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/storefront/backend/internal/domain/shared"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := &BaseHandler{}
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestBaseHandler_HandleError_NotFound(t *testing.T) {
	w := performWithError(shared.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestBaseHandler_HandleError_Conflict(t *testing.T) {
	w := performWithError(shared.NewDomainError("EMAIL_TAKEN", "Email is already registered"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_TAKEN")
}

func TestBaseHandler_HandleError_BusinessRule(t *testing.T) {
	w := performWithError(shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough stock"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBaseHandler_HandleError_UnknownError(t *testing.T) {
	w := performWithError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestBaseHandler_HandleError_UnknownCode(t *testing.T) {
	w := performWithError(shared.NewDomainError("SOMETHING_NEW", "mystery"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SOMETHING_NEW")
}
