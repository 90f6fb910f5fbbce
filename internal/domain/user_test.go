package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "admin", want: RoleAdmin},
		{input: " Analyst ", want: RoleAnalyst},
		{input: "client", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTargetField(t *testing.T) {
	tests := []struct {
		input   string
		want    TargetField
		wantErr bool
	}{
		{input: "", want: TargetTotalSales},
		{input: "total_sales", want: TargetTotalSales},
		{input: "total_profit", want: TargetTotalProfit},
		{input: "order_count", want: TargetOrderCount},
		{input: "revenue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTargetField(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesResult(t *testing.T) {
	series := MonthlySeries{{MonthIndex: 0}}

	got, ok := NewAvailableSeries(series).Ok()
	assert.True(t, ok)
	assert.Equal(t, series, got)

	got, ok = NewEmptySeries(assert.AnError).Ok()
	assert.False(t, ok)
	assert.Nil(t, got)

	_, ok = MonthlySeries{}.Last()
	assert.False(t, ok)
	assert.True(t, (*ForecastReport)(nil).IsEmpty())
}
