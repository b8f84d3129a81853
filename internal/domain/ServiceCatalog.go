package domain

import "time"

// ServiceCatalogItem é um serviço do catálogo da agência com até três preços
// candidatos: preço regular, preço para clientes em plano de comissão e uma
// mensalidade padrão usada como último recurso
type ServiceCatalogItem struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	RegularUnitPrice  *float64  `json:"regular_unit_price,omitempty"`
	PlanUnitPrice     *float64  `json:"plan_unit_price,omitempty"`
	DefaultMonthlyFee *float64  `json:"default_monthly_fee,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Bases de precificação registradas em uma linha mensal de serviço.
// PricingBasisOverride nunca é produzido pelo resolvedor: é um estado terminal
// aplicado apenas por edição manual do preço da linha
const (
	PricingBasisRegular  = "regular"
	PricingBasisPlan     = "plan"
	PricingBasisOverride = "override"
)

// ResolvedPrice é o resultado da resolução de preço de um serviço
type ResolvedPrice struct {
	UnitPrice    float64 `json:"unit_price"`
	PricingBasis string  `json:"pricing_basis"`
}

// ResolveServicePrice determina o preço unitário e a base de precificação de
// um serviço conforme o tipo de plano do cliente. Função total: candidatos
// ausentes caem para o próximo da cadeia, terminando em zero.
//
// Cliente em plano de comissão: plan_unit_price → regular_unit_price →
// default_monthly_fee → 0, sempre com base "plan" (mesmo quando o valor veio
// do preço regular). Demais clientes: regular_unit_price →
// default_monthly_fee → 0, com base "regular"
func ResolveServicePrice(planType string, item *ServiceCatalogItem) *ResolvedPrice {
	if planType == PlanTypeCommission {
		return &ResolvedPrice{
			UnitPrice:    firstPrice(item.PlanUnitPrice, item.RegularUnitPrice, item.DefaultMonthlyFee),
			PricingBasis: PricingBasisPlan,
		}
	}

	return &ResolvedPrice{
		UnitPrice:    firstPrice(item.RegularUnitPrice, item.DefaultMonthlyFee),
		PricingBasis: PricingBasisRegular,
	}
}

func firstPrice(candidates ...*float64) float64 {
	for _, candidate := range candidates {
		if candidate != nil {
			return *candidate
		}
	}

	return 0
}

type UpsertServiceCatalogItemRequest struct {
	Name              string   `json:"name"`
	Description       *string  `json:"description,omitempty"`
	RegularUnitPrice  *float64 `json:"regular_unit_price,omitempty"`
	PlanUnitPrice     *float64 `json:"plan_unit_price,omitempty"`
	DefaultMonthlyFee *float64 `json:"default_monthly_fee,omitempty"`
}
