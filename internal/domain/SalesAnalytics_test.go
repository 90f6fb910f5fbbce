package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyCustomer(t *testing.T) {
	tests := []struct {
		name   string
		orders int
		sales  int64
		want   CustomerSegment
	}{
		{name: "VIP no limite", orders: 10, sales: 1000, want: SegmentVIP},
		{name: "Muitos pedidos de pouco valor", orders: 12, sales: 600, want: SegmentLoyal},
		{name: "Loyal", orders: 5, sales: 500, want: SegmentLoyal},
		{name: "Alto valor com poucos pedidos", orders: 3, sales: 5000, want: SegmentRegular},
		{name: "Regular", orders: 2, sales: 200, want: SegmentRegular},
		{name: "Pedido único", orders: 1, sales: 9000, want: SegmentNew},
		{name: "Dois pedidos abaixo do mínimo", orders: 2, sales: 199, want: SegmentNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCustomer(tt.orders, decimal.NewFromInt(tt.sales)))
		})
	}
}

func TestNewCohortRetention(t *testing.T) {
	cohort := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

	item := NewCohortRetention(cohort, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1, 3)
	assert.Equal(t, 3, item.MonthOffset)
	assert.Equal(t, 33.33, item.RetentionRate)

	first := NewCohortRetention(cohort, cohort, 3, 3)
	assert.Equal(t, 0, first.MonthOffset)
	assert.Equal(t, 100.0, first.RetentionRate)

	empty := NewCohortRetention(cohort, cohort, 0, 0)
	assert.Zero(t, empty.RetentionRate)
}
