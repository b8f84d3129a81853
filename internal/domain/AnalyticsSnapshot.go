package domain

import (
	"time"
)

// MonthlyAnalyticsSnapshot representa uma linha sincronizada da plataforma de
// analytics (Poconverto) para um (cliente, ano, mês). É tratada como fato
// imutável pelo restante do sistema: apenas o job de sincronização a atualiza
type MonthlyAnalyticsSnapshot struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	Year          int        `json:"year"`
	Month         int        `json:"month"`
	GrossSales    float64    `json:"gross_sales"`
	Discounts     float64    `json:"discounts"`
	Refunds       float64    `json:"refunds"`
	NetSales      float64    `json:"net_sales"`
	Orders        int        `json:"orders"`
	Sessions      int        `json:"sessions"`
	AdSpendMeta   float64    `json:"ad_spend_meta"`
	AdSpendGoogle float64    `json:"ad_spend_google"`
	AdSpendTiktok float64    `json:"ad_spend_tiktok"`
	AdSpendTotal  float64    `json:"ad_spend_total"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MER calcula o Marketing Efficiency Ratio (vendas líquidas / investimento em
// anúncios) do snapshot. Retorna nil quando não houve investimento no mês
func (s *MonthlyAnalyticsSnapshot) MER() *float64 {
	if s == nil || s.AdSpendTotal <= 0 {
		return nil
	}

	mer := s.NetSales / s.AdSpendTotal
	return &mer
}

// ConversionRate calcula a taxa de conversão (pedidos / sessões) em
// percentual. Retorna nil quando não houve sessões registradas
func (s *MonthlyAnalyticsSnapshot) ConversionRate() *float64 {
	if s == nil || s.Sessions <= 0 {
		return nil
	}

	cvr := float64(s.Orders) / float64(s.Sessions) * 100
	return &cvr
}

// YoYDelta calcula a variação percentual ano contra ano entre dois valores.
// Retorna nil quando falta um dos operandos ou o valor anterior é zero, para
// evitar divisões por zero e percentuais sem significado
func YoYDelta(current, previous *float64) *float64 {
	if current == nil || previous == nil || *previous == 0 {
		return nil
	}

	delta := (*current - *previous) / *previous * 100
	return &delta
}
