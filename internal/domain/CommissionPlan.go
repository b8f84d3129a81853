package domain

import (
	"fmt"
	"sort"
	"time"
)

// Bases de cálculo de comissão suportadas
const (
	CommissionBaseNetSales   = "net_sales"
	CommissionBaseGrossSales = "gross_sales"
)

// CommissionTier representa uma faixa de comissão: a partir de
// threshold_sales de vendas no período, aplica-se rate_percent
type CommissionTier struct {
	ID             string  `json:"id"`
	PlanID         string  `json:"plan_id"`
	ThresholdSales float64 `json:"threshold_sales"`
	RatePercent    float64 `json:"rate_percent"`
	OrderIndex     int     `json:"order_index"`
}

type CommissionPlan struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"client_id"`
	Name       string            `json:"name"`
	MinimumFee float64           `json:"minimum_fee"`
	Currency   string            `json:"currency"`
	Base       string            `json:"base"`
	IsActive   bool              `json:"is_active"`
	Tiers      []*CommissionTier `json:"tiers,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// PeriodSales retorna o valor de vendas do snapshot sobre o qual o plano
// calcula a comissão, conforme a base configurada
func (p *CommissionPlan) PeriodSales(snapshot *MonthlyAnalyticsSnapshot) float64 {
	if snapshot == nil {
		return 0
	}

	if p.Base == CommissionBaseGrossSales {
		return snapshot.GrossSales
	}

	return snapshot.NetSales
}

// CommissionResult é o resultado do cálculo de comissão de um período
type CommissionResult struct {
	Commission float64         `json:"commission"`
	TierUsed   *CommissionTier `json:"tier_used,omitempty"`
	FinalDue   float64         `json:"final_due"`
	IsMinimum  bool            `json:"is_minimum"`
}

// CalculateCommission calcula a comissão devida para as vendas de um período.
//
// As faixas são percorridas em ordem de order_index (e não de threshold):
// a última faixa cujo threshold_sales foi atingido é a faixa aplicada. Cabe a
// quem configura o plano manter os thresholds crescentes na mesma ordem dos
// order_index; a função não corrige configurações fora de ordem
// (ver ValidateTiers). Sem faixa atingida, a comissão é zero e vale o piso.
func CalculateCommission(periodSales float64, tiers []*CommissionTier, minimumFee float64) *CommissionResult {
	sorted := make([]*CommissionTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	var tierUsed *CommissionTier
	for _, tier := range sorted {
		if periodSales >= tier.ThresholdSales {
			tierUsed = tier
		}
	}

	commission := 0.0
	if tierUsed != nil {
		commission = periodSales * tierUsed.RatePercent / 100
	}

	finalDue := commission
	if minimumFee > finalDue {
		finalDue = minimumFee
	}

	// Empate exato entre comissão e piso é atribuído à faixa, não ao piso
	isMinimum := finalDue == minimumFee && commission < minimumFee

	return &CommissionResult{
		Commission: commission,
		TierUsed:   tierUsed,
		FinalDue:   finalDue,
		IsMinimum:  isMinimum,
	}
}

// ValidateTiers verifica se os thresholds crescem junto com os order_index.
// Uma configuração fora de ordem não é um erro para o cálculo (que segue a
// ordem configurada), mas indica quase sempre um plano mal cadastrado
func ValidateTiers(tiers []*CommissionTier) []string {
	sorted := make([]*CommissionTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})

	var problems []string
	seen := make(map[int]bool)

	for i, tier := range sorted {
		if seen[tier.OrderIndex] {
			problems = append(problems, fmt.Sprintf("order_index duplicado: %d", tier.OrderIndex))
		}
		seen[tier.OrderIndex] = true

		if i > 0 && tier.ThresholdSales < sorted[i-1].ThresholdSales {
			problems = append(problems, fmt.Sprintf("threshold_sales decresce no order_index %d", tier.OrderIndex))
		}
	}

	return problems
}

type CreateCommissionPlanRequest struct {
	ClientID   string                        `json:"client_id"`
	Name       string                        `json:"name"`
	MinimumFee float64                       `json:"minimum_fee"`
	Currency   string                        `json:"currency,omitempty"`
	Base       string                        `json:"base,omitempty"`
	IsActive   bool                          `json:"is_active"`
	Tiers      []*CreateCommissionTierInline `json:"tiers,omitempty"`
}

type CreateCommissionTierInline struct {
	ThresholdSales float64 `json:"threshold_sales"`
	RatePercent    float64 `json:"rate_percent"`
	OrderIndex     int     `json:"order_index"`
}

type UpdateCommissionPlanRequest struct {
	ID         string   `json:"id"`
	Name       *string  `json:"name,omitempty"`
	MinimumFee *float64 `json:"minimum_fee,omitempty"`
	Base       *string  `json:"base,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}
