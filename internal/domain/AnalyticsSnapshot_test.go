package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyAnalyticsSnapshot_MER(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *MonthlyAnalyticsSnapshot
		expected *float64
	}{
		{
			name:     "Mês com investimento - vendas líquidas sobre investimento",
			snapshot: &MonthlyAnalyticsSnapshot{NetSales: 95000, AdSpendTotal: 19000},
			expected: floatPtr(5),
		},
		{
			name:     "Mês sem investimento - MER indefinido",
			snapshot: &MonthlyAnalyticsSnapshot{NetSales: 95000, AdSpendTotal: 0},
			expected: nil,
		},
		{
			name:     "Snapshot nulo",
			snapshot: nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.snapshot.MER())
		})
	}
}

func TestMonthlyAnalyticsSnapshot_ConversionRate(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *MonthlyAnalyticsSnapshot
		expected *float64
	}{
		{
			name:     "Mês com sessões - pedidos sobre sessões em percentual",
			snapshot: &MonthlyAnalyticsSnapshot{Orders: 42, Sessions: 2100},
			expected: floatPtr(2),
		},
		{
			name:     "Mês sem sessões - taxa indefinida",
			snapshot: &MonthlyAnalyticsSnapshot{Orders: 42, Sessions: 0},
			expected: nil,
		},
		{
			name:     "Snapshot nulo",
			snapshot: nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.snapshot.ConversionRate())
		})
	}
}

func TestYoYDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  *float64
		previous *float64
		expected *float64
	}{
		{
			name:     "Crescimento ano contra ano",
			current:  floatPtr(120000),
			previous: floatPtr(100000),
			expected: floatPtr(20),
		},
		{
			name:     "Queda ano contra ano",
			current:  floatPtr(75000),
			previous: floatPtr(100000),
			expected: floatPtr(-25),
		},
		{
			name:     "Sem valor atual",
			current:  nil,
			previous: floatPtr(100000),
			expected: nil,
		},
		{
			name:     "Sem valor anterior",
			current:  floatPtr(120000),
			previous: nil,
			expected: nil,
		},
		{
			name:     "Ano anterior zerado - delta indefinido",
			current:  floatPtr(120000),
			previous: floatPtr(0),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, YoYDelta(tt.current, tt.previous))
		})
	}
}
