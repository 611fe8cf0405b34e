package aggregate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/easypalm-console/internal/domain/aggregate"
)

func fixedClock(t time.Time) aggregate.Clock {
	return func() time.Time { return t }
}

func TestBucketLastNDays_SieteDias(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 30, 0, 0, time.UTC)

	dates := aggregate.BucketLastNDays(7, fixedClock(now))

	assert.Equal(t, []string{
		"2025-01-04", "2025-01-05", "2025-01-06", "2025-01-07",
		"2025-01-08", "2025-01-09", "2025-01-10",
	}, dates)
}

func TestBucketLastNDays_SinDuplicadosYAscendente(t *testing.T) {
	// Cruce de mes y de año.
	now := time.Date(2025, 1, 2, 0, 0, 1, 0, time.UTC)
	dates := aggregate.BucketLastNDays(7, fixedClock(now))

	require.Len(t, dates, 7)
	assert.Equal(t, "2024-12-27", dates[0])
	assert.Equal(t, "2025-01-02", dates[6])
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
}

func TestBucketLastNDays_UsaLaZonaDelReloj(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	// 2025-01-10 01:00 en Bangkok sigue siendo 2025-01-09 en UTC.
	now := time.Date(2025, 1, 10, 1, 0, 0, 0, bangkok)

	dates := aggregate.BucketLastNDays(1, fixedClock(now))
	assert.Equal(t, []string{"2025-01-10"}, dates)
}

func TestBucketLastNDays_NNoPositivo(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, aggregate.BucketLastNDays(0, fixedClock(now)))
	assert.Empty(t, aggregate.BucketLastNDays(-3, fixedClock(now)))
}

func TestChartSeries_DiasFaltantesEnCero(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	dates := aggregate.BucketLastNDays(7, fixedClock(now))
	data := map[string]decimal.Decimal{
		"2025-01-10": decimal.NewFromInt(500),
		"2024-12-01": decimal.NewFromInt(999), // fuera del rango
	}

	series := aggregate.ChartSeries(dates, data)

	require.Len(t, series, 7)
	totals := make([]int64, len(series))
	for i, p := range series {
		assert.Equal(t, dates[i], p.Date)
		totals[i] = p.Total.IntPart()
	}
	assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 500}, totals)
}

func TestChartSeries_DataNil(t *testing.T) {
	series := aggregate.ChartSeries([]string{"2025-01-01"}, nil)
	require.Len(t, series, 1)
	assert.True(t, series[0].Total.IsZero())
}
