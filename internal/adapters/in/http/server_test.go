package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/generated/servers"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// Server must satisfy the generated contract.
var _ servers.ServerInterface = (*Server)(nil)

func TestDomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "NotFound",
			err:        errs.NewObjectNotFoundError("orderID", "123"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "AlreadyExists",
			err:        errs.NewObjectAlreadyExistsError("email", "a@b.com"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "InvalidCredentials",
			err:        commands.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "ItemNotFound",
			err:        order.ErrItemNotFound,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "AlreadyCanceled",
			err:        order.ErrOrderAlreadyCanceled,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ValidationError",
			err:        errs.NewValueIsRequiredError("name"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "UnknownError",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			recorder := httptest.NewRecorder()
			ctx := e.NewContext(request, recorder)

			err := domainError(ctx, tt.err, "operation failed")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	err := badRequest(ctx, "Invalid request body")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"code":400,"message":"Invalid request body"}`, recorder.Body.String())
}
