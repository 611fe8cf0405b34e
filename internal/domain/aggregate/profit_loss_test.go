package aggregate_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/domain"
	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
	"github.com/jhoicas/easypalm-console/internal/domain/entity"
)

func TestValidateRange(t *testing.T) {
	s, e, err := aggregate.ValidateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.True(t, s.Before(e))

	_, _, err = aggregate.ValidateRange("2025-01-15", "2025-01-15")
	assert.NoError(t, err, "el mismo día es un rango válido")

	cases := map[string][2]string{
		"fin antes de inicio": {"2025-02-01", "2025-01-01"},
		"sin inicio":          {"", "2025-01-01"},
		"sin fin":             {"2025-01-01", "  "},
		"formato inválido":    {"01/02/2025", "2025-03-01"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := aggregate.ValidateRange(c[0], c[1])
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestProfitTone(t *testing.T) {
	assert.Equal(t, aggregate.TonePositive, aggregate.ProfitTone(decimal.Zero))
	assert.Equal(t, aggregate.TonePositive, aggregate.ProfitTone(decimal.NewFromInt(10)))
	assert.Equal(t, aggregate.ToneWarning, aggregate.ProfitTone(decimal.NewFromInt(-1)))
}

func TestCheckGrossProfit(t *testing.T) {
	ok := entity.ProfitLossReport{
		TotalRevenue: decimal.NewFromInt(1000),
		TotalCOGS:    decimal.NewFromInt(400),
		GrossProfit:  decimal.NewFromInt(600),
	}
	assert.NoError(t, aggregate.CheckGrossProfit(ok))

	bad := ok
	bad.GrossProfit = decimal.NewFromInt(700)
	assert.Error(t, aggregate.CheckGrossProfit(bad))
}

func TestAmountFormatter(t *testing.T) {
	f := aggregate.NewAmountFormatter("en")
	assert.Equal(t, "1,234.50", f.Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-20.00", f.Format(decimal.NewFromInt(-20)))

	// Un locale inválido no debe fallar.
	assert.NotEmpty(t, aggregate.NewAmountFormatter("??").Format(decimal.NewFromInt(1)))
}
