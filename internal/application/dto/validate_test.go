package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/application/dto"
	"github.com/jhoicas/easypalm-console/internal/domain"
)

func TestValidate_Ok(t *testing.T) {
	req := dto.FarmerRequest{Name: "สมศรี", NationalIDCard: "1234567890123", Telephone: "0812345678"}
	assert.NoError(t, dto.Validate(req))
}

func TestValidate_ReportaCampoJSON(t *testing.T) {
	req := dto.FarmerRequest{Name: "สมศรี", NationalIDCard: "12345", Telephone: "0812345678"}

	err := dto.Validate(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "national_id_card", ve.Field)
	assert.Equal(t, "debe tener 13 caracteres", ve.Message)
}

func TestValidate_Requerido(t *testing.T) {
	err := dto.Validate(dto.LoginRequest{Username: "a"})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "password", ve.Field)
	assert.Equal(t, "es requerido", ve.Message)
}

func TestValidate_StockQuery(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.StockQuery{}))
	assert.NoError(t, dto.Validate(dto.StockQuery{Status: "out_of_stock"}))
	assert.Error(t, dto.Validate(dto.StockQuery{Status: "low"}))
}

func TestNewList_NuncaNull(t *testing.T) {
	l := dto.NewList[dto.FarmerResponse](nil)
	assert.NotNil(t, l.Items)
	assert.Equal(t, 0, l.Total)
}
