package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Plano de referência usado pela agência: cinco faixas e piso de R$ 4.350
func referenceTiers() []*CommissionTier {
	return []*CommissionTier{
		{ID: "T1", ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
		{ID: "T2", ThresholdSales: 80000, RatePercent: 13, OrderIndex: 2},
		{ID: "T3", ThresholdSales: 100000, RatePercent: 12, OrderIndex: 3},
		{ID: "T4", ThresholdSales: 120000, RatePercent: 11, OrderIndex: 4},
		{ID: "T5", ThresholdSales: 150000, RatePercent: 10, OrderIndex: 5},
	}
}

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name        string
		periodSales float64
		tiers       []*CommissionTier
		minimumFee  float64
		validate    func(t *testing.T, result *CommissionResult)
	}{
		{
			name:        "Vendas entre faixas - aplica a última faixa atingida",
			periodSales: 95000,
			tiers:       referenceTiers(),
			minimumFee:  4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.NotNil(t, result.TierUsed)
				assert.Equal(t, "T2", result.TierUsed.ID)
				assert.Equal(t, 12350.0, result.Commission)
				assert.Equal(t, 12350.0, result.FinalDue)
				assert.False(t, result.IsMinimum)
			},
		},
		{
			name:        "Vendas abaixo de todas as faixas - cobra o piso",
			periodSales: 50000,
			tiers:       referenceTiers(),
			minimumFee:  4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Nil(t, result.TierUsed)
				assert.Equal(t, 0.0, result.Commission)
				assert.Equal(t, 4350.0, result.FinalDue)
				assert.True(t, result.IsMinimum)
			},
		},
		{
			name:        "Vendas exatamente no threshold - faixa é inclusiva",
			periodSales: 60000,
			tiers:       referenceTiers(),
			minimumFee:  4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.NotNil(t, result.TierUsed)
				assert.Equal(t, "T1", result.TierUsed.ID)
				assert.Equal(t, 8400.0, result.Commission)
				assert.Equal(t, 8400.0, result.FinalDue)
				assert.False(t, result.IsMinimum)
			},
		},
		{
			name:        "Vendas na última faixa",
			periodSales: 200000,
			tiers:       referenceTiers(),
			minimumFee:  4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Equal(t, "T5", result.TierUsed.ID)
				assert.Equal(t, 20000.0, result.Commission)
				assert.Equal(t, 20000.0, result.FinalDue)
			},
		},
		{
			name:        "Comissão abaixo do piso - vale o piso mesmo com faixa atingida",
			periodSales: 60000,
			tiers: []*CommissionTier{
				{ID: "T1", ThresholdSales: 50000, RatePercent: 5, OrderIndex: 1},
			},
			minimumFee: 4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Equal(t, "T1", result.TierUsed.ID)
				assert.Equal(t, 3000.0, result.Commission)
				assert.Equal(t, 4350.0, result.FinalDue)
				assert.True(t, result.IsMinimum)
			},
		},
		{
			name:        "Empate exato entre comissão e piso - atribuído à faixa",
			periodSales: 87000,
			tiers: []*CommissionTier{
				{ID: "T1", ThresholdSales: 80000, RatePercent: 5, OrderIndex: 1},
			},
			minimumFee: 4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Equal(t, 4350.0, result.Commission)
				assert.Equal(t, 4350.0, result.FinalDue)
				assert.False(t, result.IsMinimum)
			},
		},
		{
			name:        "Sem faixas e sem piso - tudo zero",
			periodSales: 95000,
			tiers:       nil,
			minimumFee:  0,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Nil(t, result.TierUsed)
				assert.Equal(t, 0.0, result.Commission)
				assert.Equal(t, 0.0, result.FinalDue)
				assert.False(t, result.IsMinimum)
			},
		},
		{
			name:        "Faixas fora de ordem no slice - decide o order_index, não a posição",
			periodSales: 95000,
			tiers: []*CommissionTier{
				{ID: "T2", ThresholdSales: 80000, RatePercent: 13, OrderIndex: 2},
				{ID: "T1", ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
			},
			minimumFee: 4350,
			validate: func(t *testing.T, result *CommissionResult) {
				assert.Equal(t, "T2", result.TierUsed.ID)
				assert.Equal(t, 12350.0, result.Commission)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateCommission(tt.periodSales, tt.tiers, tt.minimumFee)
			assert.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestCalculateCommission_NaoMutaSliceOriginal(t *testing.T) {
	tiers := []*CommissionTier{
		{ID: "T2", ThresholdSales: 80000, RatePercent: 13, OrderIndex: 2},
		{ID: "T1", ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
	}

	CalculateCommission(95000, tiers, 0)

	assert.Equal(t, "T2", tiers[0].ID)
	assert.Equal(t, "T1", tiers[1].ID)
}

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name     string
		tiers    []*CommissionTier
		problems []string
	}{
		{
			name:     "Plano bem configurado - sem problemas",
			tiers:    referenceTiers(),
			problems: nil,
		},
		{
			name: "order_index duplicado",
			tiers: []*CommissionTier{
				{ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
				{ThresholdSales: 80000, RatePercent: 13, OrderIndex: 1},
			},
			problems: []string{"order_index duplicado: 1"},
		},
		{
			name: "threshold decresce com o order_index",
			tiers: []*CommissionTier{
				{ThresholdSales: 80000, RatePercent: 13, OrderIndex: 1},
				{ThresholdSales: 60000, RatePercent: 14, OrderIndex: 2},
			},
			problems: []string{"threshold_sales decresce no order_index 2"},
		},
		{
			name:     "Sem faixas - nada a validar",
			tiers:    nil,
			problems: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.problems, ValidateTiers(tt.tiers))
		})
	}
}

func TestCommissionPlan_PeriodSales(t *testing.T) {
	snapshot := &MonthlyAnalyticsSnapshot{GrossSales: 120000, NetSales: 95000}

	netPlan := &CommissionPlan{Base: CommissionBaseNetSales}
	assert.Equal(t, 95000.0, netPlan.PeriodSales(snapshot))

	grossPlan := &CommissionPlan{Base: CommissionBaseGrossSales}
	assert.Equal(t, 120000.0, grossPlan.PeriodSales(snapshot))

	// Base vazia cai para vendas líquidas
	defaultPlan := &CommissionPlan{}
	assert.Equal(t, 95000.0, defaultPlan.PeriodSales(snapshot))

	assert.Equal(t, 0.0, netPlan.PeriodSales(nil))
}
