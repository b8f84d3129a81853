package domain

// ReconciliationRow é a visão conciliada de um mês de um cliente: junta o
// snapshot de analytics, a receita offline, a comissão calculada e os
// honorários de serviços em uma única linha comparável.
//
// Campos ponteiro distinguem ausência de dado de valor zero: um mês sem
// snapshot aparece como nil (exibido como "—"), nunca como zero
type ReconciliationRow struct {
	Month          int               `json:"month"`
	GrossSales     *float64          `json:"gross_sales,omitempty"`
	Discounts      *float64          `json:"discounts,omitempty"`
	Refunds        *float64          `json:"refunds,omitempty"`
	NetSales       *float64          `json:"net_sales,omitempty"`
	NetSalesYoY    *float64          `json:"net_sales_yoy,omitempty"`
	Orders         *int              `json:"orders,omitempty"`
	Sessions       *int              `json:"sessions,omitempty"`
	AdSpendTotal   *float64          `json:"ad_spend_total,omitempty"`
	MER            *float64          `json:"mer,omitempty"`
	ConversionRate *float64          `json:"conversion_rate,omitempty"`
	OfflineRevenue float64           `json:"offline_revenue"`
	Commission     *CommissionResult `json:"commission,omitempty"`
	ServiceFees    float64           `json:"service_fees"`
}

// ReconciliationTotals é o rodapé anual: somas coluna a coluna dos doze meses,
// com ausências degradadas para zero (um mês sem snapshot contribui com zero,
// não com erro)
type ReconciliationTotals struct {
	GrossSales     float64 `json:"gross_sales"`
	Discounts      float64 `json:"discounts"`
	Refunds        float64 `json:"refunds"`
	NetSales       float64 `json:"net_sales"`
	Orders         int     `json:"orders"`
	Sessions       int     `json:"sessions"`
	AdSpendTotal   float64 `json:"ad_spend_total"`
	OfflineRevenue float64 `json:"offline_revenue"`
	CommissionDue  float64 `json:"commission_due"`
	ServiceFees    float64 `json:"service_fees"`
}

// MonthKPIs é o bloco de destaque do mês corrente exibido pelo painel
type MonthKPIs struct {
	Month          int               `json:"month"`
	NetSales       *float64          `json:"net_sales,omitempty"`
	NetSalesYoY    *float64          `json:"net_sales_yoy,omitempty"`
	GrossSales     *float64          `json:"gross_sales,omitempty"`
	Discounts      *float64          `json:"discounts,omitempty"`
	Refunds        *float64          `json:"refunds,omitempty"`
	AdSpendMeta    *float64          `json:"ad_spend_meta,omitempty"`
	AdSpendGoogle  *float64          `json:"ad_spend_google,omitempty"`
	AdSpendTiktok  *float64          `json:"ad_spend_tiktok,omitempty"`
	AdSpendTotal   *float64          `json:"ad_spend_total,omitempty"`
	MER            *float64          `json:"mer,omitempty"`
	ConversionRate *float64          `json:"conversion_rate,omitempty"`
	Orders         *int              `json:"orders,omitempty"`
	Sessions       *int              `json:"sessions,omitempty"`
	OfflineRevenue float64           `json:"offline_revenue"`
	Commission     *CommissionResult `json:"commission,omitempty"`
}

// ReconciliationReport é o relatório anual de conciliação de um cliente
type ReconciliationReport struct {
	ClientID string                `json:"client_id"`
	Year     int                   `json:"year"`
	Rows     []*ReconciliationRow  `json:"rows"`
	Totals   *ReconciliationTotals `json:"totals"`
	Current  *MonthKPIs            `json:"current,omitempty"`
}
