package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestGetRequestID(t *testing.T) {
	c, _ := newTestContext("/")
	assert.Equal(t, "", getRequestID(c))

	c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
	assert.Equal(t, "header-id", getRequestID(c))

	c.Set(middleware.RequestIDKey, "ctx-id")
	assert.Equal(t, "ctx-id", getRequestID(c))
}

func TestBaseHandler_SuccessBodies(t *testing.T) {
	h := &BaseHandler{}

	c, w := newTestContext("/")
	h.Created(c, gin.H{"categoryId": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"categoryId":1}`, w.Body.String())

	c, w = newTestContext("/")
	h.OK(c, dto.MessageResponse{Message: "done"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"done"}`, w.Body.String())
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", shared.NotFoundf("Product with ID=%d does not exist.", 4), http.StatusNotFound, dto.ErrCodeNotFound, "Product with ID=4 does not exist."},
		{"ownership", shared.OwnershipViolationf("Review with ID=2 does not belong to Product with ID=1."), http.StatusBadRequest, dto.ErrCodeOwnershipViolation, "Review with ID=2 does not belong to Product with ID=1."},
		{"uniqueness", shared.UniquenessViolationf("Category with type %q already exists.", "Electronics"), http.StatusConflict, dto.ErrCodeAlreadyExists, `Category with type "Electronics" already exists.`},
		{"wrapped domain error", fmt.Errorf("tx: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound, "Resource not found"},
		{"plain error", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext("/")
			c.Set(middleware.RequestIDKey, "req-err")

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			info := decodeError(t, w)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.wantMsg, info.Message)
			assert.Equal(t, "req-err", info.RequestID)
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext("/")

	h.HandleError(c, nil)

	assert.Empty(t, w.Body.String())
}

func TestBaseHandler_ParseIDParam(t *testing.T) {
	tests := []struct {
		raw    string
		wantOK bool
		wantID int64
	}{
		{"12", true, 12},
		{"0", false, 0},
		{"-3", false, 0},
		{"abc", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext("/")
			c.Params = gin.Params{{Key: "productId", Value: tt.raw}}

			id, ok := h.parseIDParam(c, "productId")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, dto.ErrCodeInvalidInput, decodeError(t, w).Code)
			}
		})
	}
}
