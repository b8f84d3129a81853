package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveServicePrice(t *testing.T) {
	tests := []struct {
		name     string
		planType string
		item     *ServiceCatalogItem
		price    float64
		basis    string
	}{
		{
			name:     "Cliente em plano de comissão - usa o preço de plano",
			planType: PlanTypeCommission,
			item: &ServiceCatalogItem{
				RegularUnitPrice: floatPtr(3500),
				PlanUnitPrice:    floatPtr(2900),
			},
			price: 2900,
			basis: PricingBasisPlan,
		},
		{
			name:     "Cliente em plano sem preço de plano - cai para o regular mantendo a base plan",
			planType: PlanTypeCommission,
			item: &ServiceCatalogItem{
				RegularUnitPrice: floatPtr(3500),
			},
			price: 3500,
			basis: PricingBasisPlan,
		},
		{
			name:     "Cliente em plano só com mensalidade padrão",
			planType: PlanTypeCommission,
			item: &ServiceCatalogItem{
				DefaultMonthlyFee: floatPtr(1800),
			},
			price: 1800,
			basis: PricingBasisPlan,
		},
		{
			name:     "Cliente regular - usa o preço regular e ignora o de plano",
			planType: PlanTypeRegular,
			item: &ServiceCatalogItem{
				RegularUnitPrice: floatPtr(3500),
				PlanUnitPrice:    floatPtr(2900),
			},
			price: 3500,
			basis: PricingBasisRegular,
		},
		{
			name:     "Cliente regular sem preço regular - cai para a mensalidade padrão",
			planType: PlanTypeRegular,
			item: &ServiceCatalogItem{
				PlanUnitPrice:     floatPtr(2900),
				DefaultMonthlyFee: floatPtr(1800),
			},
			price: 1800,
			basis: PricingBasisRegular,
		},
		{
			name:     "Serviço sem nenhum preço cadastrado - resolve para zero",
			planType: PlanTypeCommission,
			item:     &ServiceCatalogItem{},
			price:    0,
			basis:    PricingBasisPlan,
		},
		{
			name:     "Tipo de plano desconhecido - tratado como regular",
			planType: "outro",
			item: &ServiceCatalogItem{
				RegularUnitPrice: floatPtr(3500),
				PlanUnitPrice:    floatPtr(2900),
			},
			price: 3500,
			basis: PricingBasisRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolveServicePrice(tt.planType, tt.item)

			assert.NotNil(t, resolved)
			assert.Equal(t, tt.price, resolved.UnitPrice)
			assert.Equal(t, tt.basis, resolved.PricingBasis)
		})
	}
}

func TestMonthlyServiceLine_FeeTotal(t *testing.T) {
	tests := []struct {
		name     string
		line     *MonthlyServiceLine
		expected float64
	}{
		{
			name:     "Linha com preço unitário e quantidade",
			line:     &MonthlyServiceLine{UnitPrice: floatPtr(2900), Quantity: 2, MonthlyFee: 100},
			expected: 5800,
		},
		{
			name:     "Linha com preço unitário e quantidade zero - assume uma unidade",
			line:     &MonthlyServiceLine{UnitPrice: floatPtr(2900), MonthlyFee: 100},
			expected: 2900,
		},
		{
			name:     "Linha legada sem preço unitário - monthly_fee vezes a quantidade",
			line:     &MonthlyServiceLine{Quantity: 3, MonthlyFee: 4500},
			expected: 13500,
		},
		{
			name:     "Linha legada sem quantidade - monthly_fee para uma unidade",
			line:     &MonthlyServiceLine{MonthlyFee: 1800},
			expected: 1800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.line.FeeTotal())
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
