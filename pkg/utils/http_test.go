package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/order-desk/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, utils.DecodeBody(req, &v))
	assert.Equal(t, "Ana", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana"}`))
	assert.Error(t, utils.DecodeBody(req, &v))
}

func TestWriteValidationError(t *testing.T) {
	var v struct {
		Quantity int `validate:"min=1"`
	}
	err := validator.New().Struct(v)
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"invalid request","fields":{"Quantity":"min"}}`, rr.Body.String())
}

func TestWriteReason(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteReason(rr, "submission blocked", "preço abaixo do mínimo", http.StatusConflict))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"submission blocked","reason":"preço abaixo do mínimo"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	require.NoError(t, utils.WriteText(rr, "*Novo pedido*", http.StatusOK))
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "*Novo pedido*", rr.Body.String())
}
